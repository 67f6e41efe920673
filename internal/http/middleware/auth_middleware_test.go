package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taskvault/taskvault-api/internal/security"
)

func newAuthTestServer(t *testing.T) (*security.TokenManager, http.Handler) {
	t.Helper()
	tokens, err := security.NewTokenManager("0123456789abcdef0123456789abcdef", "taskvault-api")
	if err != nil {
		t.Fatalf("new token manager: %v", err)
	}
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Error("claims missing from request context")
		}
		if claims.Email == "" {
			t.Error("claims email not populated")
		}
		w.WriteHeader(http.StatusOK)
	})
	return tokens, AuthMiddleware(tokens)(inner)
}

func TestAuthMiddleware(t *testing.T) {
	tokens, handler := newAuthTestServer(t)
	valid, err := tokens.Sign(42, "john@example.com", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	t.Run("accepts bearer-prefixed token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/api/getUser/42", nil)
		req.Header.Set("Authorization", "Bearer "+valid)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("accepts raw token without prefix", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/api/getUser/42", nil)
		req.Header.Set("Authorization", valid)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("rejects uniformly", func(t *testing.T) {
		foreign, err := security.NewTokenManager("ffffffffffffffffffffffffffffffff", "other")
		if err != nil {
			t.Fatalf("new foreign token manager: %v", err)
		}
		forged, err := foreign.Sign(42, "john@example.com", time.Hour)
		if err != nil {
			t.Fatalf("sign forged: %v", err)
		}
		expired, err := tokens.Sign(42, "john@example.com", -time.Minute)
		if err != nil {
			t.Fatalf("sign expired: %v", err)
		}

		cases := map[string]string{
			"missing header":    "",
			"empty bearer":      "Bearer ",
			"garbage":           "not-a-token",
			"foreign signature": forged,
			"expired":           expired,
		}
		for name, header := range cases {
			t.Run(name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, "/v1/api/getUser/42", nil)
				if header != "" {
					req.Header.Set("Authorization", header)
				}
				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, req)
				if rec.Code != http.StatusUnauthorized {
					t.Fatalf("status = %d, want 401", rec.Code)
				}
			})
		}
	})
}
