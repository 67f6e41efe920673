package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/taskvault/taskvault-api/internal/http/response"
	"github.com/taskvault/taskvault-api/internal/observability"
	"github.com/taskvault/taskvault-api/internal/repository"
	"github.com/taskvault/taskvault-api/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthServiceInterface
}

func NewAuthHandler(authSvc service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Password  string `json:"password" validate:"required,max=128"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeAndValidate(w, r, &req) {
		observability.RecordAuthAttempt(r.Context(), "register", "invalid_input")
		return
	}

	result, err := h.authSvc.Register(service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		observability.RecordAuthAttempt(r.Context(), "register", "invalid_input")
		response.Error(w, r, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	case errors.Is(err, repository.ErrEmailTaken):
		observability.RecordAuthAttempt(r.Context(), "register", "email_taken")
		response.Error(w, r, http.StatusConflict, "EMAIL_TAKEN", "email is already registered", nil)
		return
	case err != nil:
		observability.RecordAuthAttempt(r.Context(), "register", "error")
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "registration failed", nil)
		return
	}

	observability.RecordAuthAttempt(r.Context(), "register", "success")
	response.JSON(w, r, http.StatusCreated, map[string]any{
		"user":       result.User,
		"token":      result.Token,
		"expires_at": result.ExpiresAt.Format(time.RFC3339),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeAndValidate(w, r, &req) {
		observability.RecordAuthAttempt(r.Context(), "login", "invalid_input")
		return
	}

	result, err := h.authSvc.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		observability.RecordAuthAttempt(r.Context(), "login", "invalid_input")
		response.Error(w, r, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		observability.RecordAuthAttempt(r.Context(), "login", "invalid_credentials")
		// 400, not 401: a login attempt carries no credential to be
		// unauthorized with.
		response.Error(w, r, http.StatusBadRequest, "INVALID_CREDENTIALS", "invalid email or password", nil)
		return
	case err != nil:
		observability.RecordAuthAttempt(r.Context(), "login", "error")
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "login failed", nil)
		return
	}

	observability.RecordAuthAttempt(r.Context(), "login", "success")
	response.JSON(w, r, http.StatusOK, result)
}
