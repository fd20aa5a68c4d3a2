package hwio

import (
	"log/slog"

	"github.com/randalmurphal/hwio/pkg/hwio/observability"
)

// options holds configuration shared by Registry and Manager.
type options struct {
	claimer Claimer
	logger  *slog.Logger
	metrics observability.MetricsRecorder
}

// defaultOptions returns the default configuration: no claimer, the
// process-default logger, no-op metrics.
func defaultOptions() options {
	return options{
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
	}
}

// Option configures a Registry or Manager.
type Option func(*options)

// WithClaimer sets the collaborator notified when a Claiming registry hands
// out a handle. Required for registries instantiated with the Claiming
// policy; ignored under NonClaiming.
func WithClaimer(c Claimer) Option {
	return func(o *options) {
		o.claimer = c
	}
}

// WithLogger sets the logger used for diagnostics such as duplicate handle
// registrations. Default: slog.Default(). Pass nil to disable.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the metrics recorder for lookups, registrations, and
// claims. Default: observability.NoopMetrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
