package repository

import (
	"gorm.io/gorm"

	"github.com/taskvault/taskvault-api/internal/domain"
)

type TodoRepository interface {
	Create(todo *domain.Todo) error
	// FindByID loads the todo together with its owning user, matching the
	// original include semantics.
	FindByID(id uint) (*domain.Todo, error)
}

type GormTodoRepository struct{ db *gorm.DB }

func NewTodoRepository(db *gorm.DB) TodoRepository { return &GormTodoRepository{db: db} }

func (r *GormTodoRepository) Create(todo *domain.Todo) error {
	return r.db.Create(todo).Error
}

func (r *GormTodoRepository) FindByID(id uint) (*domain.Todo, error) {
	var t domain.Todo
	if err := r.db.Preload("User").First(&t, id).Error; err != nil {
		return nil, translateNotFound(err, ErrTodoNotFound)
	}
	return &t, nil
}
