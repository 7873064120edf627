package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Dataset struct {
		Path string
	}
	OpenAI struct {
		APIKey string
		Model  string
	}
	Maps struct {
		APIKey string
	}
	Chat struct {
		RequestTimeout time.Duration
	}
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	var config Config

	// Set defaults
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("dataset.path", "assam_flood_data_v2.csv")
	viper.SetDefault("openai.model", "")
	viper.SetDefault("chat.request_timeout", "30s")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config.Server.Port = viper.GetString("server.port")
	config.Dataset.Path = viper.GetString("dataset.path")
	config.OpenAI.Model = viper.GetString("openai.model")
	config.Chat.RequestTimeout = viper.GetDuration("chat.request_timeout")
	config.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	config.Maps.APIKey = os.Getenv("MAPS_CREDENTIALS")

	return &config, nil
}
