package service

import (
	"errors"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/repository"
)

var ErrInvalidTransfer = errors.New("transfer needs two distinct accounts and a positive amount")

type AccountService struct {
	accountRepo repository.AccountRepository
}

func NewAccountService(accountRepo repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) List() ([]domain.Account, int64, error) {
	return s.accountRepo.ListWithCount()
}

func (s *AccountService) Transfer(senderID, receiverID uint, amount float64) error {
	if senderID == receiverID || amount <= 0 {
		return ErrInvalidTransfer
	}
	return s.accountRepo.Transfer(senderID, receiverID, amount)
}
