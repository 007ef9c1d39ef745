package service

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	dirmetrics "pcdir/internal/directory/metrics"
)

// serviceConfig holds optional dependencies for the directory service.
type serviceConfig struct {
	logger  *slog.Logger
	metrics *dirmetrics.Metrics
	tracer  trace.Tracer
}

// Option configures the directory service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *dirmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithTracer injects a custom tracer. Useful for testing or when a
// pre-configured tracer is available; the default is the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}
