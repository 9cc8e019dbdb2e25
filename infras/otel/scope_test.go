package otel_test

import (
	"context"
	"errors"
	"fieldserve/infras/otel"
	"fieldserve/infras/otel/mocks"
	"fieldserve/shared/failure"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "op")
	scope := otel.NewScope(span)

	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func attributeValue(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestScope_TraceError(t *testing.T) {
	t.Run("rule violation is not a span error", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceError(failure.InvalidTransition("booking", "completed", "cancel"))
		})

		assert.Equal(t, codes.Unset, span.Status().Code)

		kind, ok := attributeValue(span, "error.kind")
		require.True(t, ok)
		assert.Equal(t, string(failure.KindInvalidTransition), kind.AsString())
		assert.Len(t, span.Events(), 1)
	})

	t.Run("internal failure marks the span", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceError(errors.New("connection reset"))
		})

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "connection reset", span.Status().Description)
	})

	t.Run("nil is ignored", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceIfError(nil)
		})

		assert.Empty(t, span.Events())
		assert.Equal(t, codes.Unset, span.Status().Code)
	})
}

func TestScope_TraceIfErrorDeferred(t *testing.T) {
	tracer, recorder := mocks.NewRecorder()

	operation := func() (err error) {
		_, scope := tracer.NewScope(context.Background(), "service", "service.Apply")
		defer scope.End()
		defer func() { scope.TraceIfError(err) }()

		return failure.BadRequestFromString("amount must be positive")
	}

	require.Error(t, operation())

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	kind, ok := attributeValue(spans[0], "error.kind")
	require.True(t, ok)
	assert.Equal(t, string(failure.KindInvalidInput), kind.AsString())
}

func TestScope_SetAttributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"booking.id":     "booking-1",
			"booking.rating": 5,
			"invoice.total":  decimal.RequireFromString("1180.5"),
			"lock.acquired":  true,
		})
	})

	total, ok := attributeValue(span, "invoice.total")
	require.True(t, ok)
	assert.Equal(t, "1180.50", total.AsString())

	rating, ok := attributeValue(span, "booking.rating")
	require.True(t, ok)
	assert.Equal(t, int64(5), rating.AsInt64())

	acquired, ok := attributeValue(span, "lock.acquired")
	require.True(t, ok)
	assert.True(t, acquired.AsBool())
}
