package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicshop/internal/config"
	"musicshop/internal/model"
)

func TestNewConnectionSQLite(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "shop.db"),
		LogLevel: "silent",
	}

	db, err := NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	for _, table := range []any{&model.Product{}, &model.Order{}, &model.OrderItem{}, &model.AppConfig{}} {
		assert.True(t, db.Migrator().HasTable(table), "%T table missing", table)
	}
}

func TestNewConnectionUnknownDriver(t *testing.T) {
	_, err := NewConnection(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	assert.NotEqual(t, logLevel("silent"), logLevel("info"))
	assert.Equal(t, logLevel("warn"), logLevel("unknown"))
}
