// Package observability provides structured logging, metrics, and tracing
// helpers for hwio: registry lookups, handle registration, and resource
// claims.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds hardware context to a logger.
// Returns a new logger with robot and interface fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "arm1", "joint.StateInterface")
//	enriched.Info("populating") // includes robot, interface
func EnrichLogger(logger *slog.Logger, robot, iface string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("robot", robot),
		slog.String("interface", iface),
	)
}

// LogDuplicateHandle logs that a registered handle was replaced.
func LogDuplicateHandle(logger *slog.Logger, iface, resource string) {
	if logger == nil {
		return
	}
	logger.Warn("replacing previously registered handle",
		slog.String("resource", resource),
		slog.String("interface", iface),
	)
}

// LogLookupMiss logs a lookup for an unregistered resource.
func LogLookupMiss(logger *slog.Logger, iface, resource string) {
	if logger == nil {
		return
	}
	logger.Debug("resource not found",
		slog.String("resource", resource),
		slog.String("interface", iface),
	)
}

// LogClaim logs a successful resource claim.
func LogClaim(logger *slog.Logger, resource, owner string) {
	if logger == nil {
		return
	}
	logger.Debug("resource claimed",
		slog.String("resource", resource),
		slog.String("owner", owner),
	)
}

// LogClaimDenied logs a claim that was rejected because the resource
// is already held.
func LogClaimDenied(logger *slog.Logger, resource, owner string) {
	if logger == nil {
		return
	}
	logger.Warn("claim denied, resource already held",
		slog.String("resource", resource),
		slog.String("owner", owner),
	)
}

// LogRelease logs a resource release.
func LogRelease(logger *slog.Logger, resource, owner string) {
	if logger == nil {
		return
	}
	logger.Debug("resource released",
		slog.String("resource", resource),
		slog.String("owner", owner),
	)
}

// LogJournalError logs a claim journal failure (non-fatal for release).
func LogJournalError(logger *slog.Logger, resource string, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("claim journal failed",
		slog.String("resource", resource),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000.0
	}
}
