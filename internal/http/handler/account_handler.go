package handler

import (
	"errors"
	"net/http"

	"github.com/taskvault/taskvault-api/internal/http/response"
	"github.com/taskvault/taskvault-api/internal/observability"
	"github.com/taskvault/taskvault-api/internal/repository"
	"github.com/taskvault/taskvault-api/internal/service"
)

type AccountHandler struct {
	accountSvc service.AccountServiceInterface
}

func NewAccountHandler(accountSvc service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

type transferRequest struct {
	SenderID   uint    `json:"sender_id" validate:"required,gt=0"`
	ReceiverID uint    `json:"receiver_id" validate:"required,gt=0"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, total, err := h.accountSvc.List()
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list accounts", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{
		"accounts": accounts,
		"total":    total,
	})
}

func (h *AccountHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if !decodeAndValidate(w, r, &req) {
		observability.RecordTransfer(r.Context(), "invalid_input")
		return
	}

	err := h.accountSvc.Transfer(req.SenderID, req.ReceiverID, req.Amount)
	switch {
	case errors.Is(err, service.ErrInvalidTransfer):
		observability.RecordTransfer(r.Context(), "invalid_input")
		response.Error(w, r, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	case errors.Is(err, repository.ErrAccountNotFound):
		observability.RecordTransfer(r.Context(), "account_not_found")
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "account not found", nil)
		return
	case err != nil:
		observability.RecordTransfer(r.Context(), "error")
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "transfer failed", nil)
		return
	}

	observability.RecordTransfer(r.Context(), "success")
	response.JSON(w, r, http.StatusOK, map[string]string{"status": "transferred"})
}
