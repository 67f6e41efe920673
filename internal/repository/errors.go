package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTodoNotFound    = errors.New("todo not found")
	ErrProductNotFound = errors.New("product not found")
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailTaken maps the database unique-index violation on users.email.
	// It is the authoritative conflict signal; the service-level existence
	// check is only a fast path in front of it.
	ErrEmailTaken = errors.New("email already registered")
)

func translateNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
