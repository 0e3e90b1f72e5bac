package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceContext_KeepsGivenIDs(t *testing.T) {
	tc := NewTraceContext("req-1", "trace-1", "span-1")
	assert.Equal(t, &TraceContext{TraceID: "trace-1", SpanID: "span-1", RequestID: "req-1"}, tc)
}

func TestNewTraceContext_FillsBlankIDs(t *testing.T) {
	tc := NewTraceContext("", "", "")
	assert.NotEmpty(t, tc.RequestID)
	assert.NotEmpty(t, tc.TraceID)
	assert.Len(t, tc.SpanID, 16)
	assert.NotEqual(t, tc.RequestID, tc.TraceID)
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))

	ctx := WithTrace(context.Background(), NewTraceContext("req-7", "", ""))
	require.NotNil(t, GetTrace(ctx))
	assert.Equal(t, "req-7", RequestID(ctx))
}
