package service

import (
	"errors"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/repository"
)

var ErrTodoTextRequired = errors.New("todo text is required")

type TodoService struct {
	todoRepo repository.TodoRepository
}

func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

func (s *TodoService) Create(userID uint, text string) (*domain.Todo, error) {
	if text == "" {
		return nil, ErrTodoTextRequired
	}
	todo := &domain.Todo{UserID: userID, Text: text}
	if err := s.todoRepo.Create(todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Get(id uint) (*domain.Todo, error) {
	return s.todoRepo.FindByID(id)
}
