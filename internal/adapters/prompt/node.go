package prompt

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/poacpm/poac/internal/core/ports"
)

// NodeID is the unique identifier for the confirmer Graft node.
const NodeID graft.ID = "adapter.confirmer"

func init() {
	graft.Register(graft.Node[ports.Confirmer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Confirmer, error) {
			return NewConfirmer(os.Stdin, os.Stdout), nil
		},
	})
}
