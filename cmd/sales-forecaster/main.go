package main

import (
	"log"

	"sales-forecaster/internal/app"
	"sales-forecaster/internal/config"
	"sales-forecaster/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(cfg.Level(), cfg.JSONLogs)

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	appLogger.Info("main", "application terminated", nil)
}
