package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records hwio metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordLookup records a handle lookup with its duration and whether
	// the resource was found.
	RecordLookup(ctx context.Context, iface string, found bool, duration time.Duration)

	// RecordRegistration records a handle registration and whether it
	// replaced an existing handle.
	RecordRegistration(ctx context.Context, iface string, replaced bool)

	// RecordClaim records a claim attempt and whether it was denied.
	RecordClaim(ctx context.Context, resource string, denied bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	lookups       metric.Int64Counter
	lookupLatency metric.Float64Histogram
	lookupMisses  metric.Int64Counter
	registrations metric.Int64Counter
	replacements  metric.Int64Counter
	claims        metric.Int64Counter
	claimsDenied  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("hwio")

	lookups, err := meter.Int64Counter("hwio.lookups",
		metric.WithDescription("Number of handle lookups"),
	)
	if err != nil {
		return nil, err
	}

	lookupLatency, err := meter.Float64Histogram("hwio.lookup.latency_ms",
		metric.WithDescription("Handle lookup latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	lookupMisses, err := meter.Int64Counter("hwio.lookup.misses",
		metric.WithDescription("Number of lookups for unregistered resources"),
	)
	if err != nil {
		return nil, err
	}

	registrations, err := meter.Int64Counter("hwio.registrations",
		metric.WithDescription("Number of handle registrations"),
	)
	if err != nil {
		return nil, err
	}

	replacements, err := meter.Int64Counter("hwio.registrations.replaced",
		metric.WithDescription("Number of registrations that replaced an existing handle"),
	)
	if err != nil {
		return nil, err
	}

	claims, err := meter.Int64Counter("hwio.claims",
		metric.WithDescription("Number of resource claim attempts"),
	)
	if err != nil {
		return nil, err
	}

	claimsDenied, err := meter.Int64Counter("hwio.claims.denied",
		metric.WithDescription("Number of claims denied because the resource was held"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		lookups:       lookups,
		lookupLatency: lookupLatency,
		lookupMisses:  lookupMisses,
		registrations: registrations,
		replacements:  replacements,
		claims:        claims,
		claimsDenied:  claimsDenied,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordLookup records a handle lookup.
func (m *otelMetrics) RecordLookup(ctx context.Context, iface string, found bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("interface", iface),
	}

	m.lookups.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.lookupLatency.Record(ctx, float64(duration.Microseconds())/1000.0, metric.WithAttributes(attrs...))

	if !found {
		m.lookupMisses.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordRegistration records a handle registration.
func (m *otelMetrics) RecordRegistration(ctx context.Context, iface string, replaced bool) {
	attrs := []attribute.KeyValue{
		attribute.String("interface", iface),
	}

	m.registrations.Add(ctx, 1, metric.WithAttributes(attrs...))
	if replaced {
		m.replacements.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordClaim records a claim attempt.
func (m *otelMetrics) RecordClaim(ctx context.Context, resource string, denied bool) {
	attrs := []attribute.KeyValue{
		attribute.String("resource", resource),
	}

	m.claims.Add(ctx, 1, metric.WithAttributes(attrs...))
	if denied {
		m.claimsDenied.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}
