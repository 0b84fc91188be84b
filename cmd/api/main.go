package main

import (
	"log"

	"github.com/joho/godotenv"

	"statistician/adapters/excel"
	"statistician/internal"
	"statistician/internal/config"
	"statistician/ui"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := internal.DefaultLogger

	// Optional startup sanity check on the configured data file, so a broken
	// path surfaces at boot rather than on the first sweep request.
	if cfg.Data.DataFile != "" {
		table, err := excel.NewDataReader(cfg.Data.DataFile).ReadTable()
		if err != nil {
			log.Fatalf("failed to read %s: %v", cfg.Data.DataFile, err)
		}
		logger.Info("data file %s loaded: %d columns, %d rows",
			cfg.Data.DataFile, len(table.Columns()), table.Len())
	}

	app := ui.NewApp(ui.Config{
		Port:              cfg.Server.Port,
		DefaultConfidence: cfg.Analysis.Confidence,
		DefaultAlpha:      cfg.Analysis.Alpha,
		BatchLimit:        cfg.Analysis.BatchLimit,
	})

	if err := app.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
