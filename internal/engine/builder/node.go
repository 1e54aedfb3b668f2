package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ly1hex/elua/internal/adapters/depfile"     //nolint:depguard // Wired in engine wiring
	"github.com/ly1hex/elua/internal/adapters/display"     //nolint:depguard // Wired in engine wiring
	"github.com/ly1hex/elua/internal/adapters/fingerprint" //nolint:depguard // Wired in engine wiring
	"github.com/ly1hex/elua/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"github.com/ly1hex/elua/internal/adapters/shell"       //nolint:depguard // Wired in engine wiring
	"github.com/ly1hex/elua/internal/adapters/telemetry"   //nolint:depguard // Wired in engine wiring
	"github.com/ly1hex/elua/internal/core/ports"
	"go.opentelemetry.io/otel/trace"
)

// NodeID is the unique identifier for the engine Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fingerprint.NodeID,
			depfile.NodeID,
			display.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.FingerprintStore](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.DepFileParser](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[trace.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, store, parser, renderer, log, tracer), nil
		},
	})
}
