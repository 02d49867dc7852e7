package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Storage configuration
	DBDriver string // "sqlite" (default) or "postgres"
	DBPath   string // sqlite file path
	DBDSN    string // postgres DSN, required when DBDriver is "postgres"

	// History retention
	HistoryLimit int

	// Logging
	LogLevel string
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to defaults. A .env file is honored when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:     getEnv("PANTRYCOACH_DB_DRIVER", "sqlite"),
		DBPath:       getEnv("PANTRYCOACH_DB_PATH", defaultDBPath()),
		DBDSN:        os.Getenv("PANTRYCOACH_DB_DSN"),
		HistoryLimit: getEnvInt("PANTRYCOACH_HISTORY_LIMIT", 100),
		LogLevel:     getEnv("PANTRYCOACH_LOG_LEVEL", "info"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// ValidateConfig checks that the loaded configuration is usable.
func ValidateConfig(cfg *Config) error {
	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			return fmt.Errorf("PANTRYCOACH_DB_PATH must not be empty for the sqlite driver")
		}
	case "postgres":
		if cfg.DBDSN == "" {
			return fmt.Errorf("PANTRYCOACH_DB_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver: %s", cfg.DBDriver)
	}

	if cfg.HistoryLimit <= 0 {
		return fmt.Errorf("history limit must be positive, got %d", cfg.HistoryLimit)
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pantrycoach.db"
	}
	return filepath.Join(home, ".pantrycoach", "pantrycoach.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
