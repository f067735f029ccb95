package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"energy-dashboard-backend/config"
	"energy-dashboard-backend/internal/model"
)

// Init opens the subscription registry and runs migrations. With the default
// DSN the database lives entirely in memory and is discarded at shutdown;
// nothing else in the application is persisted.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open subscription registry: %w", err)
	}

	if err := gdb.AutoMigrate(
		&model.PushSubscription{},
		&model.DeviceSubscription{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return gdb, nil
}
