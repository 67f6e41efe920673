package handler

import (
	"errors"
	"net/http"

	"github.com/taskvault/taskvault-api/internal/http/response"
	"github.com/taskvault/taskvault-api/internal/repository"
	"github.com/taskvault/taskvault-api/internal/service"
)

type UserHandler struct {
	userSvc service.UserServiceInterface
}

func NewUserHandler(userSvc service.UserServiceInterface) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

type createUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Password  string `json:"password" validate:"required,max=128"`
}

type updateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, "id")
	if !ok {
		return
	}
	user, err := h.userSvc.Get(id)
	if errors.Is(err, repository.ErrUserNotFound) {
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	}
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load user", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	user, err := h.userSvc.Create(service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		response.Error(w, r, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	case errors.Is(err, repository.ErrEmailTaken):
		response.Error(w, r, http.StatusConflict, "EMAIL_TAKEN", "email is already registered", nil)
		return
	case err != nil:
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create user", nil)
		return
	}
	response.JSON(w, r, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	err := h.userSvc.Update(id, service.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		response.Error(w, r, http.StatusBadRequest, "VALIDATION", "no fields to update", nil)
		return
	case errors.Is(err, repository.ErrUserNotFound):
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	case errors.Is(err, repository.ErrEmailTaken):
		response.Error(w, r, http.StatusConflict, "EMAIL_TAKEN", "email is already registered", nil)
		return
	case err != nil:
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update user", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, "id")
	if !ok {
		return
	}
	err := h.userSvc.Delete(id)
	if errors.Is(err, repository.ErrUserNotFound) {
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "user not found", nil)
		return
	}
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete user", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, total, err := h.userSvc.List(pageFromQuery(r))
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list users", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{
		"users": users,
		"total": total,
	})
}
