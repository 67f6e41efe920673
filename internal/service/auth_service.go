package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/taskvault/taskvault-api/internal/config"
	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/repository"
	"github.com/taskvault/taskvault-api/internal/security"
)

var (
	ErrMissingFields      = errors.New("all input is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

type RegisterResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

type LoginResult struct {
	Token      string `json:"token"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

type AuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	tokens   *security.TokenManager

	// Verified against when login hits an unknown email, so that path costs
	// roughly the same as a wrong password against a real record.
	decoyDigest string
}

func NewAuthService(cfg *config.Config, userRepo repository.UserRepository, tokens *security.TokenManager) (*AuthService, error) {
	decoy, err := security.HashPassword("decoy")
	if err != nil {
		return nil, fmt.Errorf("prepare decoy digest: %w", err)
	}
	return &AuthService{cfg: cfg, userRepo: userRepo, tokens: tokens, decoyDigest: decoy}, nil
}

// Register runs the registration state machine: validate, uniqueness fast
// path, hash, atomic insert, token. The unique index on users.email stays
// the authority for uniqueness; a race lost between the fast path and the
// insert rolls back and surfaces as the same conflict.
func (s *AuthService) Register(in RegisterInput) (*RegisterResult, error) {
	if in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return nil, ErrMissingFields
	}
	email := security.NormalizeEmail(in.Email)

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, repository.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}

	digest, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: digest,
	}
	if err := s.userRepo.CreateAtomic(user); err != nil {
		return nil, err
	}

	// Issued only after the commit; a rolled-back registration never holds
	// a usable token.
	token, err := s.tokens.Sign(user.ID, user.Email, s.cfg.RegisterTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &RegisterResult{
		User:      user,
		Token:     token,
		ExpiresAt: time.Now().Add(s.cfg.RegisterTokenTTL),
	}, nil
}

// Login resolves the credential by normalized email and verifies the
// password. Unknown email and wrong password are deliberately collapsed
// into one generic outcome.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	email = security.NormalizeEmail(email)

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			security.VerifyPassword(password, s.decoyDigest)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup credential: %w", err)
	}
	if !security.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID, user.Email, s.cfg.LoginTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Token: token, IsLoggedIn: true}, nil
}
