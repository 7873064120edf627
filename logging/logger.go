package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger   *logrus.Logger
	initOnce sync.Once
)

// InitLogger configures the shared logrus instance. Level comes from
// LOG_LEVEL; output is JSON on stdout.
func InitLogger() {
	initOnce.Do(initLogger)
}

func initLogger() {
	logger = logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	logger.SetOutput(os.Stdout)
}

// GetLogger returns the shared logger, initializing it on first use.
func GetLogger() *logrus.Logger {
	initOnce.Do(initLogger)
	return logger
}
