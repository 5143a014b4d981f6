package service

import (
	"log/slog"
	"time"

	"vetgate/internal/audit"
	"vetgate/internal/platform/metrics"
)

// serviceConfig holds optional dependencies for the service.
type serviceConfig struct {
	logger       *slog.Logger
	audit        *audit.Publisher
	metrics      *metrics.Metrics
	cache        Cache
	shareBaseURL string
	now          func() time.Time
}

// Option configures the service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithAuditPublisher(publisher *audit.Publisher) Option {
	return func(c *serviceConfig) {
		c.audit = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithCache enables read-through caching of provider retrievals.
func WithCache(cache Cache) Option {
	return func(c *serviceConfig) {
		c.cache = cache
	}
}

// WithShareBaseURL sets the public base URL used for shareable report links.
func WithShareBaseURL(base string) Option {
	return func(c *serviceConfig) {
		c.shareBaseURL = base
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *serviceConfig) {
		c.now = now
	}
}
