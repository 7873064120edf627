package main

import (
	"context"

	"github.com/joho/godotenv"

	"go-floodlens/chat"
	"go-floodlens/config"
	"go-floodlens/cronjobs"
	"go-floodlens/dataset"
	"go-floodlens/geocode"
	"go-floodlens/llm"
	"go-floodlens/logging"
	"go-floodlens/observability"
	"go-floodlens/routes"
)

func main() {
	logging.InitLogger()
	log := logging.GetLogger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load the observation dataset; a missing required header is fatal.
	records, err := dataset.ReadRecords(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	// Best-effort coordinate backfill before the store is sealed.
	if cfg.Maps.APIKey != "" {
		geocode.Backfill(context.Background(), records, cfg.Maps.APIKey)
	}

	store := dataset.NewStore(records)

	metrics := observability.NewMetrics()
	metrics.DatasetRecords.Set(float64(store.Len()))

	var model chat.ModelClient
	if cfg.OpenAI.APIKey != "" {
		model = llm.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		log.Info("OPENAI_API_KEY loaded")
	} else {
		log.Warn("OPENAI_API_KEY not set, queries will be answered with a configuration notice")
	}

	orch := chat.New(model, store, cfg.Chat.RequestTimeout, metrics)

	// Initialize cron jobs
	cronjobs.InitCronJobs(store)

	r := routes.SetupRouter(orch, store)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
