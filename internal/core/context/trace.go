// Package context carries per-request correlation IDs through context.Context.
package context

import (
	"context"

	"github.com/google/uuid"
)

// TraceContext identifies one HTTP request in logs and error bodies.
// TraceID and SpanID come from the OpenTelemetry span when one is recording.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

// NewTraceContext builds a TraceContext for requestID, filling blank IDs.
func NewTraceContext(requestID, traceID, spanID string) *TraceContext {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}
	if spanID == "" {
		spanID = uuid.NewString()[:16]
	}
	return &TraceContext{TraceID: traceID, SpanID: spanID, RequestID: requestID}
}

type traceContextKey struct{}

// WithTrace adds TraceContext to context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns TraceContext from context, or nil.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// RequestID returns the request ID from ctx, or "" outside a request.
func RequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}
