package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the hwio tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("hwio")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartInitSpan starts a span for the hardware initialization phase,
	// when registries are being populated.
	StartInitSpan(ctx context.Context, robot string) (context.Context, trace.Span)

	// StartClaimSpan starts a span for a resource claim.
	StartClaimSpan(ctx context.Context, resource string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartInitSpan starts a span for the hardware initialization phase.
func (m *otelSpanManager) StartInitSpan(ctx context.Context, robot string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "hwio.init",
		trace.WithAttributes(
			attribute.String("robot", robot),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartClaimSpan starts a span for a resource claim.
func (m *otelSpanManager) StartClaimSpan(ctx context.Context, resource string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "hwio.claim",
		trace.WithAttributes(
			attribute.String("resource", resource),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the span in the given context.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
