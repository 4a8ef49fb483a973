package main

import (
	"log/slog"
	"os"

	"hackhub/app/config"
	"hackhub/app/database"
	"hackhub/app/logger"
)

func main() {
	cfg, err := config.LoadDatabase()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Env)

	db, err := config.OpenDB(cfg)
	if err != nil {
		slog.Error("Cannot establish database connection", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Migration failed", "error", err)
		db.Close()
		os.Exit(1)
	}
}
