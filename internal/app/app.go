package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/taskvault/taskvault-api/internal/config"
	"github.com/taskvault/taskvault-api/internal/observability"
)

// App holds the wired process: the HTTP server plus everything that must
// be shut down in order behind it.
type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Server        *http.Server
	Observability *observability.Runtime
	DB            *gorm.DB
	Redis         redis.UniversalClient

	ShutdownTimeout          time.Duration
	ShutdownHTTPDrainTimeout time.Duration
}

func New(
	cfg *config.Config,
	logger *slog.Logger,
	server *http.Server,
	runtime *observability.Runtime,
	db *gorm.DB,
	redisClient redis.UniversalClient,
) *App {
	return &App{
		Config:                   cfg,
		Logger:                   logger,
		Server:                   server,
		Observability:            runtime,
		DB:                       db,
		Redis:                    redisClient,
		ShutdownTimeout:          20 * time.Second,
		ShutdownHTTPDrainTimeout: 10 * time.Second,
	}
}
