package repository

import (
	"errors"
	"testing"

	"github.com/taskvault/taskvault-api/internal/domain"
)

func newUser(email string) *domain.User {
	return &domain.User{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        email,
		Phone:        "123",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	}
}

func TestUserRepositoryCreateAtomicDuplicate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	if err := repo.CreateAtomic(newUser("a@b.com")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := repo.CreateAtomic(newUser("a@b.com"))
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	_, total, err := repo.List(PageRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected exactly one record after the lost race, got %d", total)
	}
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	if err := repo.Create(newUser("a@b.com")); err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := repo.FindByEmail("a@b.com")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u.Email != "a@b.com" {
		t.Fatalf("unexpected email %q", u.Email)
	}

	if _, err := repo.FindByEmail("missing@b.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryFindByIDPreloadsTodos(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	u := newUser("todos@b.com")
	if err := repo.Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	todos := NewTodoRepository(db)
	if err := todos.Create(&domain.Todo{UserID: u.ID, Text: "buy milk"}); err != nil {
		t.Fatalf("create todo: %v", err)
	}

	got, err := repo.FindByID(u.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got.Todos) != 1 || got.Todos[0].Text != "buy milk" {
		t.Fatalf("expected preloaded todo, got %+v", got.Todos)
	}
}

func TestUserRepositoryUpdateAndDelete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	u := newUser("upd@b.com")
	if err := repo.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Update(u.ID, map[string]any{"first_name": "Jane"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.FindByID(u.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.FirstName != "Jane" {
		t.Fatalf("expected updated first name, got %q", got.FirstName)
	}

	if err := repo.Update(9999, map[string]any{"first_name": "X"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for unknown id, got %v", err)
	}

	if err := repo.Delete(u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestTodoRepositoryFindByIDPreloadsUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	u := newUser("owner@b.com")
	if err := users.Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	todos := NewTodoRepository(db)
	todo := &domain.Todo{UserID: u.ID, Text: "write tests"}
	if err := todos.Create(todo); err != nil {
		t.Fatalf("create todo: %v", err)
	}

	got, err := todos.FindByID(todo.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.User == nil || got.User.Email != "owner@b.com" {
		t.Fatalf("expected preloaded user, got %+v", got.User)
	}

	if _, err := todos.FindByID(12345); !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}
