package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/poacpm/poac/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "adapter.resolver"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Resolver, error) {
			r, err := NewLocal()
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	})
}
