package service

import (
	"fmt"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/repository"
	"github.com/taskvault/taskvault-api/internal/security"
)

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Get(id uint) (*domain.User, error) {
	return s.userRepo.FindByID(id)
}

// Create is the admin-facing variant of registration. The original stored
// the submitted password verbatim here; that would break the invariant
// that the stored credential is never the plaintext, so this path hashes
// exactly like registration does.
func (s *UserService) Create(in CreateUserInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return nil, ErrMissingFields
	}
	digest, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        security.NormalizeEmail(in.Email),
		Phone:        in.Phone,
		PasswordHash: digest,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(id uint, in UpdateUserInput) error {
	updates := map[string]any{}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.Email != nil {
		updates["email"] = security.NormalizeEmail(*in.Email)
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if len(updates) == 0 {
		return ErrMissingFields
	}
	return s.userRepo.Update(id, updates)
}

func (s *UserService) Delete(id uint) error {
	return s.userRepo.Delete(id)
}

func (s *UserService) List(req repository.PageRequest) ([]domain.User, int64, error) {
	return s.userRepo.List(req)
}
