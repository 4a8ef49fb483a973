package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hackhub/app/config"
	"hackhub/app/database"
	"hackhub/app/logger"
	"hackhub/app/routes/auth"
	"hackhub/app/server"
	"hackhub/app/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Env)
	slog.Info("Starting HackHub", "env", cfg.Env, "port", cfg.Port)

	db, err := config.OpenDB(cfg)
	if err != nil {
		slog.Error("Cannot establish database connection", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	app := server.New(server.Options{
		DB:        db,
		Posters:   storage.NewSupabase(cfg.Storage.URL, cfg.Storage.Key, cfg.Storage.Bucket),
		Sessions:  auth.NewStore(cfg.SessionTTL, cfg.IsProduction()),
		AccessLog: true,
	})

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		slog.Info("Shutting down")
		if err := app.Shutdown(); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	// Start server
	slog.Info("Server listening", "address", ":"+cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server stopped", "error", err)
	}
}
