package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/poacpm/poac/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/poacpm/poac/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"github.com/poacpm/poac/internal/adapters/lock"     //nolint:depguard // Wired in app layer
	"github.com/poacpm/poac/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/poacpm/poac/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"github.com/poacpm/poac/internal/adapters/prompt"   //nolint:depguard // Wired in app layer
	"github.com/poacpm/poac/internal/adapters/resolver" //nolint:depguard // Wired in app layer
	"github.com/poacpm/poac/internal/core/ports"
	"github.com/poacpm/poac/internal/engine/reconciler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			lock.NodeID,
			resolver.NodeID,
			fs.PackageStoreNodeID,
			prompt.NodeID,
			reconciler.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[*config.Loader](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(a, log, loader), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}
	locks, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}
	res, err := graft.Dep[ports.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	packages, err := graft.Dep[ports.PackageStore](ctx)
	if err != nil {
		return nil, err
	}
	confirmer, err := graft.Dep[ports.Confirmer](ctx)
	if err != nil {
		return nil, err
	}
	rec, err := graft.Dep[*reconciler.Reconciler](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(manifests, locks, res, packages, confirmer, rec, log), nil
}
