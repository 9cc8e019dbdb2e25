package mocks

import (
	"context"
	"fieldserve/infras/otel"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type otelNoop struct{}

func (otelNoop) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, scopeNoop{}
}

// NewOtel returns a tracer whose scopes discard everything.
func NewOtel() otel.Otel {
	return otelNoop{}
}

type scopeNoop struct{}

func (scopeNoop) End() {}
func (scopeNoop) TraceError(error) {}
func (scopeNoop) TraceIfError(error) {}
func (scopeNoop) AddEvent(string) {}
func (scopeNoop) SetAttribute(string, any) {}
func (scopeNoop) SetAttributes(map[string]any) {}

// NewScope returns a scope that discards everything.
func NewScope() otel.Scope {
	return scopeNoop{}
}

// NewRecorder returns a tracer backed by an in-memory recorder, for asserting on ended spans.
func NewRecorder() (otel.Otel, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()

	return otel.NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))), recorder
}
