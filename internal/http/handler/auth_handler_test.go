package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/repository"
	"github.com/taskvault/taskvault-api/internal/service"
)

type stubAuthService struct {
	registerResult *service.RegisterResult
	registerErr    error
	loginResult    *service.LoginResult
	loginErr       error

	gotRegister service.RegisterInput
	gotEmail    string
	gotPassword string
}

func (s *stubAuthService) Register(in service.RegisterInput) (*service.RegisterResult, error) {
	s.gotRegister = in
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(email, password string) (*service.LoginResult, error) {
	s.gotEmail = email
	s.gotPassword = password
	return s.loginResult, s.loginErr
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Run("201 with user and token", func(t *testing.T) {
		stub := &stubAuthService{registerResult: &service.RegisterResult{
			User:  &domain.User{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com"},
			Token: "signed-token",
		}}
		h := NewAuthHandler(stub)

		req := httptest.NewRequest(http.MethodPost, "/v1/api/register", strings.NewReader(
			`{"first_name":"John","last_name":"Doe","email":"john@example.com","password":"s3cret-pass"}`))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		body := decodeEnvelope(t, rec)
		if body["success"] != true {
			t.Fatalf("success = %v, want true", body["success"])
		}
		data := body["data"].(map[string]any)
		if data["token"] != "signed-token" {
			t.Fatalf("token = %v", data["token"])
		}
		if stub.gotRegister.Email != "john@example.com" {
			t.Fatalf("service received email %q", stub.gotRegister.Email)
		}
	})

	t.Run("409 on duplicate email", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{registerErr: repository.ErrEmailTaken})

		req := httptest.NewRequest(http.MethodPost, "/v1/api/register", strings.NewReader(
			`{"first_name":"John","last_name":"Doe","email":"john@example.com","password":"s3cret-pass"}`))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", rec.Code)
		}
		body := decodeEnvelope(t, rec)
		errObj := body["error"].(map[string]any)
		if errObj["code"] != "EMAIL_TAKEN" {
			t.Fatalf("error code = %v", errObj["code"])
		}
	})

	t.Run("400 on invalid payload", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{})

		cases := map[string]string{
			"malformed json":   `{`,
			"missing email":    `{"first_name":"John","last_name":"Doe","password":"s3cret-pass"}`,
			"bad email":        `{"first_name":"John","last_name":"Doe","email":"nope","password":"s3cret-pass"}`,
			"missing password": `{"first_name":"John","last_name":"Doe","email":"john@example.com"}`,
		}
		for name, payload := range cases {
			t.Run(name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodPost, "/v1/api/register", strings.NewReader(payload))
				rec := httptest.NewRecorder()
				h.Register(rec, req)
				if rec.Code != http.StatusBadRequest {
					t.Fatalf("status = %d, want 400", rec.Code)
				}
			})
		}
	})

	t.Run("accepts any non-empty password", func(t *testing.T) {
		stub := &stubAuthService{registerResult: &service.RegisterResult{
			User:  &domain.User{ID: 1, Email: "john@example.com"},
			Token: "signed-token",
		}}
		h := NewAuthHandler(stub)

		req := httptest.NewRequest(http.MethodPost, "/v1/api/register", strings.NewReader(
			`{"first_name":"John","last_name":"Doe","email":"A@B.com","phone":"123","password":"pw1"}`))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if stub.gotRegister.Password != "pw1" {
			t.Fatalf("service received password %q", stub.gotRegister.Password)
		}
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Run("200 with token and isLoggedIn", func(t *testing.T) {
		stub := &stubAuthService{loginResult: &service.LoginResult{Token: "signed-token", IsLoggedIn: true}}
		h := NewAuthHandler(stub)

		req := httptest.NewRequest(http.MethodPost, "/v1/api/login", strings.NewReader(
			`{"email":"john@example.com","password":"s3cret-pass"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		data := decodeEnvelope(t, rec)["data"].(map[string]any)
		if data["token"] != "signed-token" || data["isLoggedIn"] != true {
			t.Fatalf("unexpected payload %v", data)
		}
	})

	t.Run("400 on bad credentials", func(t *testing.T) {
		h := NewAuthHandler(&stubAuthService{loginErr: service.ErrInvalidCredentials})

		req := httptest.NewRequest(http.MethodPost, "/v1/api/login", strings.NewReader(
			`{"email":"john@example.com","password":"wrong"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		errObj := decodeEnvelope(t, rec)["error"].(map[string]any)
		if errObj["code"] != "INVALID_CREDENTIALS" {
			t.Fatalf("error code = %v", errObj["code"])
		}
	})
}
