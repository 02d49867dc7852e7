package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv() {
	os.Unsetenv("PANTRYCOACH_DB_DRIVER")
	os.Unsetenv("PANTRYCOACH_DB_PATH")
	os.Unsetenv("PANTRYCOACH_DB_DSN")
	os.Unsetenv("PANTRYCOACH_HISTORY_LIMIT")
	os.Unsetenv("PANTRYCOACH_LOG_LEVEL")
}

func TestLoadConfig(t *testing.T) {
	clearEnv()
	os.Setenv("PANTRYCOACH_DB_DRIVER", "sqlite")
	os.Setenv("PANTRYCOACH_DB_PATH", "/tmp/pantrycoach-test.db")
	os.Setenv("PANTRYCOACH_HISTORY_LIMIT", "250")
	os.Setenv("PANTRYCOACH_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/pantrycoach-test.db", cfg.DBPath)
	assert.Equal(t, 250, cfg.HistoryLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv()

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigPostgresRequiresDSN(t *testing.T) {
	clearEnv()
	os.Setenv("PANTRYCOACH_DB_DRIVER", "postgres")

	_, err := LoadConfig()
	assert.Error(t, err)

	os.Setenv("PANTRYCOACH_DB_DSN", "host=localhost user=pantry dbname=pantrycoach")
	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	clearEnv()
	os.Setenv("PANTRYCOACH_DB_DRIVER", "etcd")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigBadHistoryLimitFallsBack(t *testing.T) {
	clearEnv()
	os.Setenv("PANTRYCOACH_HISTORY_LIMIT", "not-a-number")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 100, cfg.HistoryLimit)
}

func TestValidateConfigRejectsNonPositiveLimit(t *testing.T) {
	err := ValidateConfig(&Config{DBDriver: "sqlite", DBPath: "x.db", HistoryLimit: 0})
	assert.Error(t, err)
}
