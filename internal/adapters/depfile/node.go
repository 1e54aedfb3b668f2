package depfile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ly1hex/elua/internal/core/ports"
)

// NodeID is the unique identifier for the depfile parser Graft node.
const NodeID graft.ID = "adapter.depfile_parser"

func init() {
	graft.Register(graft.Node[ports.DepFileParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DepFileParser, error) {
			return NewParser(), nil
		},
	})
}
