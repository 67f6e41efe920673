package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/repository"
	"github.com/taskvault/taskvault-api/internal/service"
)

type stubAccountService struct {
	accounts []domain.Account
	total    int64
	err      error

	gotSender   uint
	gotReceiver uint
	gotAmount   float64
}

func (s *stubAccountService) List() ([]domain.Account, int64, error) {
	return s.accounts, s.total, s.err
}

func (s *stubAccountService) Transfer(senderID, receiverID uint, amount float64) error {
	s.gotSender = senderID
	s.gotReceiver = receiverID
	s.gotAmount = amount
	return s.err
}

func TestAccountHandlerList(t *testing.T) {
	stub := &stubAccountService{
		accounts: []domain.Account{{ID: 1, Name: "alice", Balance: 1000}},
		total:    1,
	}
	h := NewAccountHandler(stub)

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/v1/api/accounts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["total"] != float64(1) {
		t.Fatalf("total = %v, want 1", data["total"])
	}
}

func TestAccountHandlerTransfer(t *testing.T) {
	t.Run("200 and forwards the movement", func(t *testing.T) {
		stub := &stubAccountService{}
		h := NewAccountHandler(stub)

		rec := httptest.NewRecorder()
		h.Transfer(rec, httptest.NewRequest(http.MethodPost, "/v1/api/accounts/transfer",
			strings.NewReader(`{"sender_id":1,"receiver_id":2,"amount":250}`)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if stub.gotSender != 1 || stub.gotReceiver != 2 || stub.gotAmount != 250 {
			t.Fatalf("transfer args = %d %d %v", stub.gotSender, stub.gotReceiver, stub.gotAmount)
		}
	})

	t.Run("400 on invalid movement", func(t *testing.T) {
		h := NewAccountHandler(&stubAccountService{err: service.ErrInvalidTransfer})

		rec := httptest.NewRecorder()
		h.Transfer(rec, httptest.NewRequest(http.MethodPost, "/v1/api/accounts/transfer",
			strings.NewReader(`{"sender_id":1,"receiver_id":1,"amount":250}`)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("404 on unknown account", func(t *testing.T) {
		h := NewAccountHandler(&stubAccountService{err: repository.ErrAccountNotFound})

		rec := httptest.NewRecorder()
		h.Transfer(rec, httptest.NewRequest(http.MethodPost, "/v1/api/accounts/transfer",
			strings.NewReader(`{"sender_id":1,"receiver_id":99,"amount":250}`)))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("400 on non-positive amount", func(t *testing.T) {
		h := NewAccountHandler(&stubAccountService{})

		rec := httptest.NewRecorder()
		h.Transfer(rec, httptest.NewRequest(http.MethodPost, "/v1/api/accounts/transfer",
			strings.NewReader(`{"sender_id":1,"receiver_id":2,"amount":-5}`)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}
