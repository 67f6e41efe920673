package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taskvault/taskvault-api/internal/http/response"
	"github.com/taskvault/taskvault-api/internal/security"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// AuthMiddleware guards a route subtree with bearer authentication. The
// Authorization header is accepted with or without the "Bearer " prefix.
// Missing, malformed, and expired tokens all get the same 401 so a probe
// cannot tell which check failed.
func AuthMiddleware(tokens *security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
				raw = strings.TrimSpace(raw[7:])
			}
			if raw == "" {
				unauthorized(w, r)
				return
			}
			claims, err := tokens.Parse(raw)
			if err != nil {
				unauthorized(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*security.Claims, bool) {
	c, ok := ctx.Value(ClaimsContextKey).(*security.Claims)
	return c, ok
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing token", nil)
}
