// Package db owns the process-wide database handle.
package db

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"summary-share/internal/logger"
	"summary-share/config"
	"summary-share/models"
)

var (
	openOnce sync.Once
	database *gorm.DB
)

// Init opens the global Postgres connection using config values and runs
// schema migration. Safe to call more than once.
func Init(cfg config.DatabaseConfig) error {
	var initErr error
	openOnce.Do(func() {
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslMode,
		)

		gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			initErr = fmt.Errorf("failed to connect to database: %w", err)
			return
		}

		if err := gdb.AutoMigrate(
			&models.User{},
			&models.UserProfile{},
			&models.Summary{},
		); err != nil {
			initErr = fmt.Errorf("failed to migrate database: %w", err)
			return
		}

		sqlDB, err := gdb.DB()
		if err != nil {
			initErr = err
			return
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)

		database = gdb
		logger.Log.Info("postgres connected and schema migrated")
	})
	return initErr
}

func Database() *gorm.DB { return database }
