// Package tracer provides a lightweight tracing abstraction for the avatar
// chain.
//
// The chain emits one span per backend attempt without depending on
// OpenTelemetry APIs directly. Implementations:
//   - NoopTracer: for tests and the CLI path (zero overhead)
//   - OTelTracer: OpenTelemetry adapter for the server
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span for one backend attempt.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes. The
	// returned context carries the span for child operations.
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names used by the avatar chain.
const (
	SpanAIModel    = "avatar.ai_model"
	SpanProcedural = "avatar.procedural_face"
	SpanSilhouette = "avatar.silhouette"
)

// Attribute keys used by the avatar chain.
const (
	AttrSeed         = "seed"
	AttrGender       = "gender"
	AttrAgeBucket    = "age_bucket"
	AttrWidth        = "width_px"
	AttrHeight       = "height_px"
	AttrFailureClass = "failure_class"
)

// Event names used by the avatar chain.
const (
	EventTransition = "chain.transition"
)
