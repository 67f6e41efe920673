package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Product carries free-form attributes in a JSON column, e.g.
// {"color":"pink","size":["M","L"]}. Queries against it go through
// repository.ProductRepository.FindByProperties.
type Product struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	Name       string            `gorm:"size:255" json:"name"`
	Properties datatypes.JSONMap `json:"properties"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
