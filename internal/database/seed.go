package database

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/security"
)

type SeedReport struct {
	CreatedUsers    int  `json:"created_users"`
	CreatedAccounts int  `json:"created_accounts"`
	CreatedProducts int  `json:"created_products"`
	Noop            bool `json:"noop"`
}

var seedAccounts = []domain.Account{
	{Name: "alice", Balance: 1000},
	{Name: "bob", Balance: 500},
}

var seedProducts = []domain.Product{
	{Name: "basic tee", Properties: datatypes.JSONMap{"color": "pink", "size": []any{"S", "M"}}},
	{Name: "zip hoodie", Properties: datatypes.JSONMap{"color": "black", "size": []any{"M", "L"}}},
}

// Seed loads demo data for local development. Every insert goes through
// FirstOrCreate keyed on a natural identifier, so re-running is safe.
func Seed(db *gorm.DB) (*SeedReport, error) {
	report := &SeedReport{}

	digest, err := security.HashPassword("password123")
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	demoUser := domain.User{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john.doe@example.com",
		Phone:        "555-0100",
		PasswordHash: digest,
	}
	res := db.Where("email = ?", demoUser.Email).FirstOrCreate(&demoUser)
	if res.Error != nil {
		return nil, fmt.Errorf("seed user: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		report.CreatedUsers++
	}

	for _, a := range seedAccounts {
		res := db.Where("name = ?", a.Name).FirstOrCreate(&a)
		if res.Error != nil {
			return nil, fmt.Errorf("seed account %s: %w", a.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			report.CreatedAccounts++
		}
	}

	for _, p := range seedProducts {
		res := db.Where("name = ?", p.Name).FirstOrCreate(&p)
		if res.Error != nil {
			return nil, fmt.Errorf("seed product %s: %w", p.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			report.CreatedProducts++
		}
	}

	report.Noop = report.CreatedUsers == 0 && report.CreatedAccounts == 0 && report.CreatedProducts == 0
	return report, nil
}
