package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/poacpm/poac/internal/adapters/fs"
	"github.com/poacpm/poac/internal/adapters/lock"
	"github.com/poacpm/poac/internal/adapters/manifest"
	"github.com/poacpm/poac/internal/core/ports"
)

// NodeID is the unique identifier for the reconciler Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.PackageStoreNodeID, manifest.NodeID, lock.NodeID},
		Run: func(ctx context.Context) (*Reconciler, error) {
			packages, err := graft.Dep[ports.PackageStore](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}
			locks, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}
			return New(packages, manifests, locks), nil
		},
	})
}
