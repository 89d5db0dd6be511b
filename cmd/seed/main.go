// Command seed resets and reloads the emotion/need reference tables from the
// configured CSV sources. Safe to run repeatedly.
package main

import (
	"log/slog"
	"os"

	"github.com/riskspace/emopop/internal/config"
	"github.com/riskspace/emopop/internal/database"
	"github.com/riskspace/emopop/internal/logging"
	"github.com/riskspace/emopop/internal/models"
	"github.com/riskspace/emopop/internal/seed"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.DB.AutoMigrate(&models.Emotion{}, &models.Need{}); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if err := seed.Run(database.DB, cfg); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("reference data seeded")
}
