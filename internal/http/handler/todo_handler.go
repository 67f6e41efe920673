package handler

import (
	"errors"
	"net/http"

	"github.com/taskvault/taskvault-api/internal/http/response"
	"github.com/taskvault/taskvault-api/internal/repository"
	"github.com/taskvault/taskvault-api/internal/service"
)

type TodoHandler struct {
	todoSvc service.TodoServiceInterface
}

func NewTodoHandler(todoSvc service.TodoServiceInterface) *TodoHandler {
	return &TodoHandler{todoSvc: todoSvc}
}

type createTodoRequest struct {
	UserID uint   `json:"user_id" validate:"required,gt=0"`
	Text   string `json:"text" validate:"required,max=1000"`
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	todo, err := h.todoSvc.Create(req.UserID, req.Text)
	switch {
	case errors.Is(err, service.ErrTodoTextRequired):
		response.Error(w, r, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	case errors.Is(err, repository.ErrUserNotFound):
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	case err != nil:
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create todo", nil)
		return
	}
	response.JSON(w, r, http.StatusCreated, todo)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, "id")
	if !ok {
		return
	}
	todo, err := h.todoSvc.Get(id)
	if errors.Is(err, repository.ErrTodoNotFound) {
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "todo not found", nil)
		return
	}
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load todo", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, todo)
}
