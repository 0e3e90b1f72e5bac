package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	appctx "capplan/internal/core/context"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderTraceID   = "X-Trace-ID"
)

var tracer = otel.Tracer("capplan/http")

// Trace middleware adds request tracing context.
// Uses the OpenTelemetry span when a tracer provider is installed,
// otherwise takes X-Trace-ID from the caller or generates one.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+c.FullPath(),
			trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		var tc *appctx.TraceContext
		if sc := span.SpanContext(); sc.IsValid() {
			tc = appctx.NewTraceContext(c.GetHeader(HeaderRequestID), sc.TraceID().String(), sc.SpanID().String())
		} else {
			tc = appctx.NewTraceContext(c.GetHeader(HeaderRequestID), c.GetHeader(HeaderTraceID), "")
		}

		c.Request = c.Request.WithContext(appctx.WithTrace(ctx, tc))

		c.Header(HeaderRequestID, tc.RequestID)
		c.Header(HeaderTraceID, tc.TraceID)

		c.Next()
	}
}
