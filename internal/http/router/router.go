package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/taskvault/taskvault-api/internal/health"
	"github.com/taskvault/taskvault-api/internal/http/handler"
	"github.com/taskvault/taskvault-api/internal/http/middleware"
	"github.com/taskvault/taskvault-api/internal/http/response"
	"github.com/taskvault/taskvault-api/internal/security"
)

type Dependencies struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	TodoHandler    *handler.TodoHandler
	ProductHandler *handler.ProductHandler
	AccountHandler *handler.AccountHandler

	TokenManager     *security.TokenManager
	CORSOrigins      []string
	AuthRateLimitRPM int
	APIRateLimitRPM  int

	// Optional overrides; defaults are in-process fixed windows.
	APIRateLimiter  func(http.Handler) http.Handler
	AuthRateLimiter func(http.Handler) http.Handler

	Readiness      *health.ProbeRunner
	EnableOTelHTTP bool
}

// NewRouter builds the route tree. Register/login and the todo/product
// routes are open, matching the original surface; user management and
// accounts require a bearer token.
func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))

	apiLimiter := dep.APIRateLimiter
	if apiLimiter == nil {
		apiLimiter = middleware.NewRateLimiter(dep.APIRateLimitRPM, time.Minute, "api").Middleware()
	}
	authLimiter := dep.AuthRateLimiter
	if authLimiter == nil {
		authLimiter = middleware.NewRateLimiter(dep.AuthRateLimitRPM, time.Minute, "auth").Middleware()
	}
	r.Use(apiLimiter)

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "DEPENDENCY_UNREADY", "dependencies are not ready", map[string]any{"checks": results})
	})

	r.Route("/v1/api", func(r chi.Router) {
		r.With(authLimiter).Post("/register", dep.AuthHandler.Register)
		r.With(authLimiter).Post("/login", dep.AuthHandler.Login)

		r.Post("/createTodo", dep.TodoHandler.Create)
		r.Get("/getTodo/{id}", dep.TodoHandler.Get)

		r.Post("/createProducts", dep.ProductHandler.Create)
		r.Get("/getAllProducts", dep.ProductHandler.List)
		r.Get("/getProductWithJsonField", dep.ProductHandler.FindByProperties)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(dep.TokenManager))

			r.Get("/getUser/{id}", dep.UserHandler.Get)
			r.Post("/createUser", dep.UserHandler.Create)
			r.Post("/updateUser/{id}", dep.UserHandler.Update)
			r.Delete("/deleteUser/{id}", dep.UserHandler.Delete)
			r.Get("/allUser", dep.UserHandler.List)

			r.Get("/accounts", dep.AccountHandler.List)
			r.Post("/accounts/transfer", dep.AccountHandler.Transfer)
		})
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}
