package di

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/taskvault/taskvault-api/internal/app"
	"github.com/taskvault/taskvault-api/internal/config"
	"github.com/taskvault/taskvault-api/internal/database"
	"github.com/taskvault/taskvault-api/internal/health"
	"github.com/taskvault/taskvault-api/internal/http/handler"
	"github.com/taskvault/taskvault-api/internal/http/middleware"
	"github.com/taskvault/taskvault-api/internal/http/router"
	"github.com/taskvault/taskvault-api/internal/observability"
	"github.com/taskvault/taskvault-api/internal/repository"
	"github.com/taskvault/taskvault-api/internal/security"
	"github.com/taskvault/taskvault-api/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	provideRuntimeDB,
	provideRedisClient,
	provideReadinessProbeRunner,
)

var RepositorySet = wire.NewSet(
	repository.NewUserRepository,
	repository.NewTodoRepository,
	repository.NewProductRepository,
	repository.NewAccountRepository,
)

var SecuritySet = wire.NewSet(provideTokenManager)

var ServiceSet = wire.NewSet(
	service.NewAuthService,
	service.NewUserService,
	service.NewTodoService,
	service.NewProductService,
	service.NewAccountService,
	wire.Bind(new(service.AuthServiceInterface), new(*service.AuthService)),
	wire.Bind(new(service.UserServiceInterface), new(*service.UserService)),
	wire.Bind(new(service.TodoServiceInterface), new(*service.TodoService)),
	wire.Bind(new(service.ProductServiceInterface), new(*service.ProductService)),
	wire.Bind(new(service.AccountServiceInterface), new(*service.AccountService)),
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewUserHandler,
	handler.NewTodoHandler,
	handler.NewProductHandler,
	handler.NewAccountHandler,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	return observability.InitLogger(cfg, runtime.LoggerProvider)
}

func provideRuntimeDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func provideRedisClient(cfg *config.Config) redis.UniversalClient {
	if cfg.RedisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Warn("invalid REDIS_URL, rate limiting falls back to in-process windows", "error", err)
		return nil
	}
	return redis.NewClient(opts)
}

func provideTokenManager(cfg *config.Config) (*security.TokenManager, error) {
	return security.NewTokenManager(cfg.TokenKey, cfg.TokenIssuer)
}

func provideReadinessProbeRunner(db *gorm.DB, redisClient redis.UniversalClient) *health.ProbeRunner {
	return health.NewProbeRunner(time.Second,
		health.NewDBChecker(db),
		health.NewRedisChecker(redisClient),
	)
}

func provideRouterDependencies(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	todoHandler *handler.TodoHandler,
	productHandler *handler.ProductHandler,
	accountHandler *handler.AccountHandler,
	tokens *security.TokenManager,
	redisClient redis.UniversalClient,
	readiness *health.ProbeRunner,
	cfg *config.Config,
) router.Dependencies {
	dep := router.Dependencies{
		AuthHandler:      authHandler,
		UserHandler:      userHandler,
		TodoHandler:      todoHandler,
		ProductHandler:   productHandler,
		AccountHandler:   accountHandler,
		TokenManager:     tokens,
		CORSOrigins:      cfg.CORSAllowedOrigins,
		AuthRateLimitRPM: cfg.AuthRateLimitPerMin,
		APIRateLimitRPM:  cfg.APIRateLimitPerMin,
		Readiness:        readiness,
		EnableOTelHTTP:   cfg.OTELMetricsEnabled || cfg.OTELTracingEnabled,
	}
	if redisClient != nil {
		// Shared windows across replicas. The API limiter fails open so a
		// redis outage degrades to unlimited reads; the auth limiter fails
		// closed because brute-force protection must not lapse.
		dep.APIRateLimiter = middleware.NewDistributedRateLimiter(
			middleware.NewRedisFixedWindowLimiter(redisClient, "rl:api"),
			cfg.APIRateLimitPerMin, time.Minute, middleware.FailOpen, "api",
		).Middleware()
		dep.AuthRateLimiter = middleware.NewDistributedRateLimiter(
			middleware.NewRedisFixedWindowLimiter(redisClient, "rl:auth"),
			cfg.AuthRateLimitPerMin, time.Minute, middleware.FailClosed, "auth",
		).Middleware()
	}
	return dep
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
