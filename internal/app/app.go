// Package app implements the application layer for poac.
package app

import (
	"github.com/poacpm/poac/internal/core/ports"
	"github.com/poacpm/poac/internal/engine/reconciler"
)

// App represents the main application logic.
type App struct {
	manifests  ports.ManifestStore
	locks      ports.LockStore
	resolver   ports.Resolver
	packages   ports.PackageStore
	confirmer  ports.Confirmer
	logger     ports.Logger
	reconciler *reconciler.Reconciler
}

// New creates a new App instance.
func New(
	manifests ports.ManifestStore,
	locks ports.LockStore,
	resolver ports.Resolver,
	packages ports.PackageStore,
	confirmer ports.Confirmer,
	rec *reconciler.Reconciler,
	log ports.Logger,
) *App {
	return &App{
		manifests:  manifests,
		locks:      locks,
		resolver:   resolver,
		packages:   packages,
		confirmer:  confirmer,
		logger:     log,
		reconciler: rec,
	}
}
