package utils

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "app-cpf"

// TraceOperation traces an operation with timing and attributes
func TraceOperation(ctx context.Context, operationName string, attributes map[string]interface{}) (context.Context, trace.Span, func()) {
	start := time.Now()

	spanCtx, span := otel.Tracer(tracerName).Start(ctx, operationName, trace.WithAttributes(toAttributes(attributes)...))

	// Return cleanup function that adds timing
	cleanup := func() {
		AddTimingToSpan(span, start)
		span.End()
	}

	return spanCtx, span, cleanup
}

// TraceValidationOperation traces a CPF validation
func TraceValidationOperation(ctx context.Context, source string) (context.Context, trace.Span, func()) {
	return TraceOperation(ctx, "validation.cpf", map[string]interface{}{
		"validation.type":   "cpf",
		"validation.source": source,
	})
}

// TraceEndpointStep traces a specific step within an endpoint
func TraceEndpointStep(ctx context.Context, stepName string, attributes map[string]interface{}) (context.Context, trace.Span) {
	stepAttributes := map[string]interface{}{
		"step.name": stepName,
		"step.type": "endpoint_operation",
	}
	for k, v := range attributes {
		stepAttributes[k] = v
	}

	return otel.Tracer(tracerName).Start(ctx, "endpoint.step."+stepName, trace.WithAttributes(toAttributes(stepAttributes)...))
}

// TraceInputParsing traces input parsing operations
func TraceInputParsing(ctx context.Context, inputType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "parse_input", map[string]interface{}{
		"input.type": inputType,
	})
}

// TraceBusinessLogic traces business logic operations
func TraceBusinessLogic(ctx context.Context, logicType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "business_logic", map[string]interface{}{
		"logic.type": logicType,
	})
}

// TraceResponseSerialization traces response serialization operations
func TraceResponseSerialization(ctx context.Context, responseType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "serialize_response", map[string]interface{}{
		"response.type": responseType,
	})
}

// AddTimingToSpan adds timing information to an existing span
func AddTimingToSpan(span trace.Span, startTime time.Time) {
	duration := time.Since(startTime)
	span.SetAttributes(
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("duration", duration.String()),
	)
}

// RecordErrorInSpan records an error in a span with additional context
func RecordErrorInSpan(span trace.Span, err error, context map[string]interface{}) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(toAttributes(context)...)
}

// AddSpanAttribute adds a single attribute to a span
func AddSpanAttribute(span trace.Span, key string, value interface{}) {
	span.SetAttributes(toAttribute(key, value))
}

func toAttributes(values map[string]interface{}) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(values))
	for k, v := range values {
		attrs = append(attrs, toAttribute(k, v))
	}
	return attrs
}

func toAttribute(key string, value interface{}) attribute.KeyValue {
	switch val := value.(type) {
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case bool:
		return attribute.Bool(key, val)
	case float64:
		return attribute.Float64(key, val)
	default:
		return attribute.String(key, "unknown_type")
	}
}
