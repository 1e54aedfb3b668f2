// Package telemetry wires OpenTelemetry tracing into the build engine.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/ly1hex/elua/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Bridge implements sdktrace.SpanProcessor and forwards span lifecycle
// events to the logger at debug level. Spans are created by the engine
// around each executed template command; callable commands run without one.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.logger == nil {
		return
	}
	b.logger.Debug("start " + s.Name())
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		b.logger.Debug(fmt.Sprintf("done  %s (%s): %s", s.Name(), elapsed, desc))
		return
	}
	b.logger.Debug(fmt.Sprintf("done  %s (%s)", s.Name(), elapsed))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
