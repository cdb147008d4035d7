package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"golf-api/internal/domain/gateway/db"
	"golf-api/internal/infra/database"
)

// Open connects to PostgreSQL through gorm and migrates the users and golf_clubs tables
func Open(config database.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database pool: %w", err)
	}
	config.ApplyPool(sqlDB)

	if err := gormDB.AutoMigrate(db.Records()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return gormDB, nil
}
