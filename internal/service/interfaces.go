package service

import (
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/repository"
)

type AuthServiceInterface interface {
	Register(in RegisterInput) (*RegisterResult, error)
	Login(email, password string) (*LoginResult, error)
}

type UserServiceInterface interface {
	Get(id uint) (*domain.User, error)
	Create(in CreateUserInput) (*domain.User, error)
	Update(id uint, in UpdateUserInput) error
	Delete(id uint) error
	List(req repository.PageRequest) ([]domain.User, int64, error)
}

type TodoServiceInterface interface {
	Create(userID uint, text string) (*domain.Todo, error)
	Get(id uint) (*domain.Todo, error)
}

type ProductServiceInterface interface {
	Create(name string, properties map[string]any) (*domain.Product, error)
	List(req repository.PageRequest) ([]domain.Product, error)
	FindByProperties(color, size string) ([]domain.Product, error)
}

type AccountServiceInterface interface {
	List() ([]domain.Account, int64, error)
	Transfer(senderID, receiverID uint, amount float64) error
}
