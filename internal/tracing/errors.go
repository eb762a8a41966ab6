package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrorType classifies recorded errors so traces can be filtered by origin.
type ErrorType string

const (
	// ErrorTypeHTTP covers transport-level failures.
	ErrorTypeHTTP ErrorType = "http"
	// ErrorTypeExtraction covers text-extraction failures.
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeValidation covers rejected input (file type, size, guards).
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeAnalysis covers scoring-engine failures.
	ErrorTypeAnalysis ErrorType = "analysis"
	// ErrorTypeInternal covers everything else.
	ErrorTypeInternal ErrorType = "internal"
)

// RecordError marks the span as failed and tags it with the error type.
func RecordError(span trace.Span, err error, errorType ErrorType) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetAttributes(
		attribute.String("error.type", string(errorType)),
		attribute.String("error.message", err.Error()),
	)
	span.SetStatus(codes.Error, err.Error())
}

// RecordErrorWithInfo records an error together with extra span attributes.
func RecordErrorWithInfo(span trace.Span, err error, errorType ErrorType, attributes ...attribute.KeyValue) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetAttributes(
		attribute.String("error.type", string(errorType)),
		attribute.String("error.message", err.Error()),
	)
	if len(attributes) > 0 {
		span.SetAttributes(attributes...)
	}
	span.SetStatus(codes.Error, err.Error())
}
