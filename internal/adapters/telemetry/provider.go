package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies spans emitted by the build engine.
const instrumentationName = "github.com/ly1hex/elua"

// Provider owns the SDK tracer provider for the process.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider configures the global OTel SDK with the given span processors
// and returns the provider handle.
func NewProvider(processors ...sdktrace.SpanProcessor) *Provider {
	opts := make([]sdktrace.TracerProviderOption, 0, len(processors))
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return &Provider{tp: tp}
}

// Tracer returns the tracer the engine uses for per-command spans.
func (p *Provider) Tracer() trace.Tracer {
	return p.tp.Tracer(instrumentationName)
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
