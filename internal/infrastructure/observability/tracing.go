package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "jan-server/vision-chat-api"

// GetTracer returns the tracer for the service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartProviderSpan starts a client span around one AI provider call.
func StartProviderSpan(ctx context.Context, provider, operation, model string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "ai_provider."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("ai.provider", provider),
			attribute.String("ai.operation", operation),
			attribute.String("ai.model", model),
		),
	)
}

// RecordError records an error on a span.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
