package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pageza/pantrycoach/config"
	"github.com/pageza/pantrycoach/internal/models"
)

// Open connects to the configured store and runs auto-migration for the
// three datasets (profile, inventory, history). The sqlite driver is the
// client-resident default; postgres is available behind the config switch.
// Failures come back as wrapped, recoverable errors so the caller can fall
// back to a fresh store rather than crash.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating store directory: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.DBDriver, err)
	}

	if err := db.AutoMigrate(
		&models.UserProfile{},
		&models.InventoryItem{},
		&models.DietaryHistoryEntry{},
	); err != nil {
		return nil, fmt.Errorf("migrating store: %w", err)
	}
	return db, nil
}

// Reset moves a corrupt sqlite store aside so the next Open starts fresh.
// The damaged file is kept with a ".corrupt" suffix for inspection. Only
// meaningful for the sqlite driver.
func Reset(cfg *config.Config) error {
	if cfg.DBDriver != "sqlite" {
		return fmt.Errorf("reset is only supported for the sqlite driver")
	}
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		return nil
	}
	if err := os.Rename(cfg.DBPath, cfg.DBPath+".corrupt"); err != nil {
		return fmt.Errorf("moving corrupt store aside: %w", err)
	}
	return nil
}
