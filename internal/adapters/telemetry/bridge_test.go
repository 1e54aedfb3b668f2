package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ly1hex/elua/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
)

// recordingLogger is a simple test double for ports.Logger.
type recordingLogger struct {
	mu     sync.Mutex
	debugs []string
}

func (l *recordingLogger) Debug(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugs = append(l.debugs, msg)
}

func (l *recordingLogger) Info(string) {}
func (l *recordingLogger) Warn(string) {}
func (l *recordingLogger) Error(error) {}

func TestBridge_SpanLifecycle(t *testing.T) {
	log := &recordingLogger{}
	provider := telemetry.NewProvider(telemetry.NewBridge(log))
	t.Cleanup(func() {
		require.NoError(t, provider.Shutdown(context.Background()))
	})

	tracer := provider.Tracer()

	_, span := tracer.Start(context.Background(), "src/a.o")
	span.End()

	require.Len(t, log.debugs, 2)
	assert.Equal(t, "start src/a.o", log.debugs[0])
	assert.Contains(t, log.debugs[1], "done  src/a.o")
}

func TestBridge_ErrorStatus(t *testing.T) {
	log := &recordingLogger{}
	provider := telemetry.NewProvider(telemetry.NewBridge(log))
	t.Cleanup(func() {
		require.NoError(t, provider.Shutdown(context.Background()))
	})

	_, span := provider.Tracer().Start(context.Background(), "app")
	span.RecordError(errors.New("exit 1"))
	span.SetStatus(codes.Error, "command failed")
	span.End()

	require.Len(t, log.debugs, 2)
	assert.Contains(t, log.debugs[1], "command failed")
}
