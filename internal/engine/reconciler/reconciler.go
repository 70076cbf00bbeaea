// Package reconciler applies an uninstall plan to the installed packages, the manifest and the lock.
package reconciler

import (
	"context"

	"github.com/poacpm/poac/internal/core/domain"
	"github.com/poacpm/poac/internal/core/ports"
)

// LockAction describes what happened to the lock file.
type LockAction string

const (
	// LockUnchanged means nothing was planned and nothing was touched.
	LockUnchanged LockAction = "Unchanged"
	// LockDeleted means every activated package was removed along with the deps section and the lock.
	LockDeleted LockAction = "Deleted"
	// LockRewritten means the lock now holds the reduced Activated Set.
	LockRewritten LockAction = "Rewritten"
)

// Removal reports the outcome for one planned package directory.
type Removal struct {
	Package domain.PackageID
	Path    string
	// Found is false when the directory was already absent.
	Found bool
}

// Result is the outcome of Apply.
type Result struct {
	// Activated is the Activated Set after the removal.
	Activated domain.ActivatedSet
	// Manifest is the manifest as it was written.
	Manifest ports.Manifest
	Removals []Removal
	Action   LockAction
}

// Reconciler brings the project on disk in line with a removal plan.
type Reconciler struct {
	packages  ports.PackageStore
	manifests ports.ManifestStore
	locks     ports.LockStore
}

// New creates a new Reconciler.
func New(packages ports.PackageStore, manifests ports.ManifestStore, locks ports.LockStore) *Reconciler {
	return &Reconciler{
		packages:  packages,
		manifests: manifests,
		locks:     locks,
	}
}

// Apply removes every planned package directory, then either tears the project down
// (the plan covers the whole Activated Set) or rewrites the manifest and the lock.
// The given set and manifest are not modified.
func (r *Reconciler) Apply(
	ctx context.Context,
	layout domain.Layout,
	plan *domain.UninstallPlan,
	set domain.ActivatedSet,
	manifest ports.Manifest,
) (Result, error) {
	if plan.IsEmpty() {
		return Result{Activated: set, Manifest: manifest, Action: LockUnchanged}, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	removals, err := r.removePackages(layout, plan)
	if err != nil {
		return Result{}, err
	}

	if plan.Equal(set.Backtracked) {
		return r.teardown(layout, manifest, removals)
	}
	return r.rewrite(layout, plan, set, manifest, removals)
}

func (r *Reconciler) removePackages(layout domain.Layout, plan *domain.UninstallPlan) ([]Removal, error) {
	removals := make([]Removal, 0, plan.Len())
	for _, id := range plan.Packages() {
		path := layout.PackageDir(id)
		found, err := r.packages.Remove(path)
		if err != nil {
			return nil, err
		}
		removals = append(removals, Removal{Package: id, Path: path, Found: found})
	}
	return removals, nil
}

func (r *Reconciler) teardown(layout domain.Layout, manifest ports.Manifest, removals []Removal) (Result, error) {
	updated := manifest.Clone()
	updated.DropDeps()
	if err := r.manifests.Save(layout.ManifestPath(), updated); err != nil {
		return Result{}, err
	}
	if err := r.locks.Remove(layout.LockPath()); err != nil {
		return Result{}, err
	}

	return Result{
		Activated: domain.NewActivatedSet(nil),
		Manifest:  updated,
		Removals:  removals,
		Action:    LockDeleted,
	}, nil
}

func (r *Reconciler) rewrite(
	layout domain.Layout,
	plan *domain.UninstallPlan,
	set domain.ActivatedSet,
	manifest ports.Manifest,
	removals []Removal,
) (Result, error) {
	reduced := set.Without(plan)

	updated := manifest.Clone()
	for _, id := range plan.Packages() {
		// Transitive packages were never declared, so most of these are no-ops.
		updated.RemoveDep(id.Source.ManifestKey(id.Name))
	}
	if err := r.manifests.Save(layout.ManifestPath(), updated); err != nil {
		return Result{}, err
	}
	if err := r.locks.Save(layout.LockPath(), updated.Fingerprint(), reduced); err != nil {
		return Result{}, err
	}

	return Result{
		Activated: reduced,
		Manifest:  updated,
		Removals:  removals,
		Action:    LockRewritten,
	}, nil
}
