package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestTraceOperation(t *testing.T) {
	ctx := context.Background()
	attributes := map[string]interface{}{
		"string_attr":  "value",
		"int_attr":     42,
		"int64_attr":   int64(123),
		"bool_attr":    true,
		"float64_attr": 3.14,
		"unknown_attr": struct{}{},
	}

	spanCtx, span, cleanup := TraceOperation(ctx, "test_operation", attributes)

	require.NotNil(t, spanCtx)
	require.NotNil(t, span)
	require.NotNil(t, cleanup)

	cleanup()
	_ = span.IsRecording()
}

func TestTraceOperation_EmptyAttributes(t *testing.T) {
	spanCtx, span, cleanup := TraceOperation(context.Background(), "test_operation", map[string]interface{}{})

	assert.NotNil(t, spanCtx)
	assert.NotNil(t, span)
	cleanup()
}

func TestTraceHelpers(t *testing.T) {
	ctx := context.Background()

	helpers := []func() (context.Context, func()){
		func() (context.Context, func()) {
			c, _, done := TraceStoreOperation(ctx, "users", "load")
			return c, done
		},
		func() (context.Context, func()) {
			c, _, done := TraceCacheOperation(ctx, "get", "cep:88010000")
			return c, done
		},
		func() (context.Context, func()) {
			c, _, done := TraceExternalService(ctx, "viacep", "lookup")
			return c, done
		},
		func() (context.Context, func()) {
			c, _, done := TraceValidationOperation(ctx, "form", "cep")
			return c, done
		},
	}

	for _, h := range helpers {
		c, done := h()
		assert.NotNil(t, c)
		done()
	}
}

func TestSpanHelpers(t *testing.T) {
	_, span, cleanup := TraceOperation(context.Background(), "helpers", nil)
	defer cleanup()

	AddTimingToSpan(span, time.Now().Add(-time.Second))
	AddSpanAttribute(span, "count", 3)
	AddSpanAttribute(span, "other", []string{"x"})
	RecordErrorInSpan(span, errors.New("boom"), map[string]interface{}{"key": "value"})
}

func TestToAttribute(t *testing.T) {
	assert.Equal(t, attribute.String("k", "v"), toAttribute("k", "v"))
	assert.Equal(t, attribute.Int("k", 1), toAttribute("k", 1))
	assert.Equal(t, attribute.Int64("k", 2), toAttribute("k", int64(2)))
	assert.Equal(t, attribute.Bool("k", true), toAttribute("k", true))
	assert.Equal(t, attribute.Float64("k", 1.5), toAttribute("k", 1.5))
	assert.Equal(t, attribute.String("k", "unknown_type"), toAttribute("k", struct{}{}))
	assert.Len(t, toAttributes(map[string]interface{}{"a": 1, "b": "x"}), 2)
}
