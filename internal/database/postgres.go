package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskvault/taskvault-api/internal/config"
)

// Open connects to Postgres. TranslateError maps driver-level constraint
// violations to gorm sentinels so the repositories can recognize a lost
// uniqueness race without parsing pq error codes.
func Open(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}
