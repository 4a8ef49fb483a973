package config

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	Storage     StorageConfig
	SessionTTL  time.Duration
}

// StorageConfig points at the managed object storage holding hackathon posters.
type StorageConfig struct {
	URL    string
	Key    string
	Bucket string
}

// Load reads the application configuration from the environment,
// after loading a .env file if one exists.
func Load() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.Storage.URL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if cfg.Storage.Key == "" {
		missing = append(missing, "SUPABASE_KEY")
	}
	if len(missing) > 0 {
		return nil, errors.New("missing required environment variables: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadDatabase is Load for tools that only talk to the database.
func LoadDatabase() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("missing required environment variables: DATABASE_URL")
	}
	return cfg, nil
}

func read() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Env:         getEnvOrDefault("ENV", "development"),
		Port:        getEnvOrDefault("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Storage: StorageConfig{
			URL:    strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
			Key:    os.Getenv("SUPABASE_KEY"),
			Bucket: getEnvOrDefault("POSTER_BUCKET", "hackathon-posters"),
		},
	}

	ttl, err := time.ParseDuration(getEnvOrDefault("SESSION_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL %q", os.Getenv("SESSION_TTL"))
	}
	cfg.SessionTTL = ttl

	return cfg, nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// OpenDB connects to the PostgreSQL database behind DATABASE_URL.
func OpenDB(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	slog.Info("Testing database connection...")
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	slog.Info("Database connected successfully")
	return db, nil
}

func getEnvOrDefault(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}
