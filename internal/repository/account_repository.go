package repository

import (
	"gorm.io/gorm"

	"github.com/taskvault/taskvault-api/internal/domain"
)

type AccountRepository interface {
	ListWithCount() ([]domain.Account, int64, error)
	// Transfer moves amount between two accounts with raw parameterized SQL
	// inside one transaction; either both balance updates commit or neither
	// does.
	Transfer(senderID, receiverID uint, amount float64) error
}

type GormAccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &GormAccountRepository{db: db}
}

func (r *GormAccountRepository) ListWithCount() ([]domain.Account, int64, error) {
	var accounts []domain.Account
	if err := r.db.Select("id", "name", "balance").Find(&accounts).Error; err != nil {
		return nil, 0, err
	}
	return accounts, int64(len(accounts)), nil
}

func (r *GormAccountRepository) Transfer(senderID, receiverID uint, amount float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec("UPDATE accounts SET balance = balance - ? WHERE id = ?", amount, senderID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		res = tx.Exec("UPDATE accounts SET balance = balance + ? WHERE id = ?", amount, receiverID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
}
