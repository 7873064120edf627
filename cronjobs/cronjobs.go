package cronjobs

import (
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"go-floodlens/dataset"
	"go-floodlens/logging"
	"go-floodlens/types"
)

// InitCronJobs starts the background schedule.
func InitCronJobs(store *dataset.Store) {
	log := logging.GetLogger()
	c := cron.New()

	// Dataset snapshot: hourly on the hour
	_, err := c.AddFunc("0 * * * *", func() {
		logSnapshot(store)
	})
	if err != nil {
		log.WithError(err).Error("error scheduling dataset snapshot")
	}

	c.Start()
	log.Info("cron jobs started")
}

func logSnapshot(store *dataset.Store) {
	severe := 0
	landslides := 0
	districts := map[string]bool{}

	for _, rec := range store.Records() {
		if d, ok := rec.Field(types.FieldDistrict); ok {
			districts[d] = true
		}
		if s, ok := rec.Field(types.FieldFloodSeverity); ok && (s == "Severe" || s == "High") {
			severe++
		}
		if c, ok := rec.Field(types.FieldLandslideCount); ok && c != "" && c != "0" {
			landslides++
		}
	}

	logging.GetLogger().WithFields(logrus.Fields{
		"records":          store.Len(),
		"districts":        len(districts),
		"severeOrHigh":     severe,
		"landslideReports": landslides,
	}).Info("dataset snapshot")
}
