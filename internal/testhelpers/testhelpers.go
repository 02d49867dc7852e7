package testhelpers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pageza/pantrycoach/internal/models"
)

// SetupTestDatabase opens an in-memory sqlite store with all three datasets
// migrated. Each call returns an isolated database that vanishes with the
// test.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.UserProfile{},
		&models.InventoryItem{},
		&models.DietaryHistoryEntry{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}
