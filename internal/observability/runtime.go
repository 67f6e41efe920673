package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/taskvault/taskvault-api/internal/config"
)

// Runtime owns the OTel providers created at startup. Shutdown flushes
// their export buffers, so it must run only after the HTTP server has
// drained.
type Runtime struct {
	LoggerProvider *sdklog.LoggerProvider
	MeterProvider  *sdkmetric.MeterProvider
	TracerProvider *sdktrace.TracerProvider
}

// InitRuntime brings up logs, metrics, and tracing in that order. A
// failure partway through tears down whatever already started before
// returning the error.
func InitRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	var started []func(context.Context) error
	fail := func(err error) (*Runtime, error) {
		for _, stop := range started {
			_ = stop(ctx)
		}
		return nil, err
	}

	lp, err := InitLogs(ctx, cfg, logger)
	if err != nil {
		return fail(err)
	}
	if lp != nil {
		started = append(started, lp.Shutdown)
	}

	mp, err := InitMetrics(ctx, cfg, logger)
	if err != nil {
		return fail(err)
	}
	if mp != nil {
		started = append(started, mp.Shutdown)
	}

	tp, err := InitTracing(ctx, cfg, logger)
	if err != nil {
		return fail(err)
	}

	return &Runtime{LoggerProvider: lp, MeterProvider: mp, TracerProvider: tp}, nil
}

// Shutdown stops the providers in reverse init order and reports every
// failure, not just the first.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	var errs []error
	stop := func(name string, f func(context.Context) error) {
		if err := f(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown %s: %w", name, err))
		}
	}
	if r.TracerProvider != nil {
		stop("traces", r.TracerProvider.Shutdown)
	}
	if r.MeterProvider != nil {
		stop("metrics", r.MeterProvider.Shutdown)
	}
	if r.LoggerProvider != nil {
		stop("logs", r.LoggerProvider.Shutdown)
	}
	return errors.Join(errs...)
}
