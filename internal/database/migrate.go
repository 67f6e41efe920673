package database

import (
	"gorm.io/gorm"

	"github.com/taskvault/taskvault-api/internal/domain"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Todo{},
		&domain.Product{},
		&domain.Account{},
	)
}
