package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ly1hex/elua/internal/adapters/config"  //nolint:depguard // Wired in app wiring
	"github.com/ly1hex/elua/internal/adapters/logger"  //nolint:depguard // Wired in app wiring
	"github.com/ly1hex/elua/internal/adapters/watcher" //nolint:depguard // Wired in app wiring
	"github.com/ly1hex/elua/internal/core/ports"
	"github.com/ly1hex/elua/internal/engine/builder"
)

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			builder.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			engine, err := graft.Dep[*builder.Engine](ctx)
			if err != nil {
				return nil, err
			}

			watch, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, engine, watch, log),
				Logger: log,
			}, nil
		},
	})
}
