package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/exemplar"

	"github.com/taskvault/taskvault-api/internal/config"
)

type appMetricSet struct {
	authAttempts       metric.Int64Counter
	requestDuration    metric.Float64Histogram
	transferCounter    metric.Int64Counter
	rateLimitDecisions metric.Int64Counter
}

var (
	metricsMu  sync.RWMutex
	appMetrics *appMetricSet
)

func InitMetrics(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sdkmetric.MeterProvider, error) {
	if !cfg.OTELMetricsEnabled {
		mp := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(mp)
		logger.Info("otel metrics disabled")
		return mp, nil
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTELExporterOTLPEndpoint)}
	if cfg.OTELExporterOTLPInsecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp metric exporter: %w", err)
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create metric resource: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.OTELMetricsExportInterval))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
		sdkmetric.WithExemplarFilter(exemplar.TraceBasedFilter),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Name: "http.request.duration"},
			sdkmetric.Stream{
				Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
					Boundaries: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
				},
			},
		)),
	)
	otel.SetMeterProvider(mp)

	meter := mp.Meter(cfg.OTELServiceName)
	authAttempts, err := meter.Int64Counter("auth.attempts",
		metric.WithDescription("Registration and login attempts by flow and outcome"))
	if err != nil {
		return nil, err
	}
	requestDuration, err := meter.Float64Histogram("http.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of handled HTTP requests in seconds"))
	if err != nil {
		return nil, err
	}
	transferCounter, err := meter.Int64Counter("accounts.transfers",
		metric.WithDescription("Balance transfer attempts by outcome"))
	if err != nil {
		return nil, err
	}
	rateLimitDecisions, err := meter.Int64Counter("http.rate_limit.decisions",
		metric.WithDescription("Rate limiter allow/deny decisions by scope"))
	if err != nil {
		return nil, err
	}

	metricsMu.Lock()
	appMetrics = &appMetricSet{
		authAttempts:       authAttempts,
		requestDuration:    requestDuration,
		transferCounter:    transferCounter,
		rateLimitDecisions: rateLimitDecisions,
	}
	metricsMu.Unlock()

	logger.Info("otel metrics initialized", "endpoint", cfg.OTELExporterOTLPEndpoint)
	return mp, nil
}

func current() *appMetricSet {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return appMetrics
}

// Recorders are no-ops until InitMetrics has run, so handlers never need a
// nil check before recording.

func RecordAuthAttempt(ctx context.Context, flow, status string) {
	m := current()
	if m == nil {
		return
	}
	m.authAttempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("flow", flow),
		attribute.String("status", status),
	))
}

func RecordRequestDuration(ctx context.Context, route, method string, statusCode int, duration time.Duration) {
	m := current()
	if m == nil {
		return
	}
	m.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("route", route),
		attribute.String("method", method),
		attribute.Int("status_code", statusCode),
	))
}

func RecordTransfer(ctx context.Context, status string) {
	m := current()
	if m == nil {
		return
	}
	m.transferCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func RecordRateLimitDecision(ctx context.Context, scope, outcome string) {
	m := current()
	if m == nil {
		return
	}
	m.rateLimitDecisions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("scope", scope),
		attribute.String("outcome", outcome),
	))
}
