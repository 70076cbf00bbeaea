package app

import (
	"context"
	"errors"

	"github.com/poacpm/poac/internal/core/domain"
	"github.com/poacpm/poac/internal/core/ports"
	"github.com/poacpm/poac/internal/engine/planner"
	"github.com/poacpm/poac/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

const (
	confirmSelected = "Are you sure delete above packages?"
	confirmAll      = "Are you sure delete all packages?"
	canceled        = "canceled."
)

// UninstallOptions configuration for the Uninstall method.
type UninstallOptions struct {
	// All removes every installed package without touching the manifest or the lock.
	All bool
	// Yes skips the confirmation prompt.
	Yes bool
}

// Uninstall removes the named packages together with the dependencies only they need.
// Packages still needed by something else are kept and reported as warnings.
//
//nolint:cyclop // orchestration function
func (a *App) Uninstall(ctx context.Context, layout domain.Layout, names []string, opts UninstallOptions) error {
	if opts.All {
		return a.UninstallAll(ctx, layout, opts.Yes)
	}
	if len(names) == 0 {
		return domain.ErrInvalidArguments
	}

	// 1. Load the manifest and validate every target before anything changes.
	manifest, err := a.manifests.Load(layout.ManifestPath())
	if err != nil {
		return err
	}
	if !manifest.HasDeps() {
		return zerr.With(domain.ErrMissingDepsSection, "path", layout.ManifestPath())
	}
	targets, err := matchTargets(manifest.Deps(), names)
	if err != nil {
		return err
	}

	// 2. Obtain the Activated Set from the lock, or resolve it.
	set, err := a.activated(ctx, layout, manifest)
	if err != nil {
		return err
	}

	// 3. Plan.
	res := planner.Plan(set, targets)
	for _, c := range res.Conflicts {
		a.logger.Warn(c.String())
	}
	if res.Plan.IsEmpty() {
		a.logger.Info("nothing to uninstall")
		return nil
	}

	// 4. Confirm.
	for _, id := range res.Plan.Sorted() {
		a.logger.Info(id.String())
	}
	if !opts.Yes {
		ok, err := a.confirmer.Confirm(ctx, confirmSelected)
		if err != nil {
			return err
		}
		if !ok {
			a.logger.Info(canceled)
			return nil
		}
	}

	// 5. Apply.
	result, err := a.reconciler.Apply(ctx, layout, res.Plan, set, manifest)
	if err != nil {
		return errors.Join(domain.ErrUninstallFailed, err)
	}
	a.report(result)
	return nil
}

// UninstallAll removes the whole installed dependencies directory.
// The manifest and the lock are left untouched.
func (a *App) UninstallAll(ctx context.Context, layout domain.Layout, yes bool) error {
	if !yes {
		ok, err := a.confirmer.Confirm(ctx, confirmAll)
		if err != nil {
			return err
		}
		if !ok {
			a.logger.Info(canceled)
			return nil
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := a.packages.RemoveAll(layout.DepsDir()); err != nil {
		return errors.Join(domain.ErrUninstallFailed, err)
	}
	a.logger.Success("all packages are deleted")
	return nil
}

// activated returns the locked Activated Set when the lock matches the manifest,
// and resolves the declared dependencies otherwise.
func (a *App) activated(ctx context.Context, layout domain.Layout, manifest ports.Manifest) (domain.ActivatedSet, error) {
	locked, err := a.locks.Load(layout.LockPath(), manifest.Fingerprint())
	if err != nil {
		return domain.ActivatedSet{}, err
	}
	if locked != nil {
		return *locked, nil
	}

	set, err := a.resolver.Resolve(ctx, layout.DepsDir(), manifest.Deps())
	if err != nil {
		return domain.ActivatedSet{}, zerr.Wrap(err, domain.ErrResolveFailed.Error())
	}
	return set, nil
}

// matchTargets maps user-supplied names to package names. A name may be given
// bare ("owner/repo") or as its manifest key ("github/owner/repo").
func matchTargets(deps []domain.Dependency, names []string) ([]string, error) {
	targets := make([]string, 0, len(names))
	for _, name := range names {
		found := false
		for _, dep := range deps {
			if dep.Matches(name) {
				targets = append(targets, dep.Name)
				found = true
				break
			}
		}
		if !found {
			return nil, zerr.With(domain.ErrUnknownPackage, "package", name)
		}
	}
	return targets, nil
}

func (a *App) report(result reconciler.Result) {
	for _, r := range result.Removals {
		if r.Found {
			a.logger.Success(r.Package.Name + " is deleted")
			continue
		}
		a.logger.Warn(r.Package.Name + " is not found")
	}
}
