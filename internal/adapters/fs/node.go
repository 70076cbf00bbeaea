package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/poacpm/poac/internal/core/ports"
)

// PackageStoreNodeID is the unique identifier for the package store Graft node.
const PackageStoreNodeID graft.ID = "adapter.fs.package_store"

func init() {
	graft.Register(graft.Node[ports.PackageStore]{
		ID:        PackageStoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageStore, error) {
			return NewPackageStore(), nil
		},
	})
}
