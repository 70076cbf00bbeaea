// Package resolver builds Activated Sets from the packages installed under the deps directory.
package resolver

import (
	"context"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/go-version"
	"github.com/poacpm/poac/internal/core/domain"
	"go.trai.ch/zerr"
)

// cacheSize bounds the number of parsed package manifests kept between resolutions.
const cacheSize = 1024

// Local implements ports.Resolver against installed packages only.
// Each installed package ships a poac.yml declaring its name, version, source and deps.
type Local struct {
	cache *lru.Cache[string, cachedFile]
}

// NewLocal creates a new Local resolver.
func NewLocal() (*Local, error) {
	cache, err := lru.New[string, cachedFile](cacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create manifest cache")
	}
	return &Local{cache: cache}, nil
}

// resolution is the state of a single Resolve call.
type resolution struct {
	idx      index
	position map[string]int
	pkgs     []domain.ActivatedPackage
}

// Resolve selects, for every declared dependency and transitively for theirs,
// the newest installed version satisfying the constraint.
// Two different versions of one package name fail with ErrVersionConflict.
func (r *Local) Resolve(ctx context.Context, depsDir string, deps []domain.Dependency) (domain.ActivatedSet, error) {
	idx, err := r.scan(depsDir)
	if err != nil {
		return domain.ActivatedSet{}, err
	}

	res := &resolution{
		idx:      idx,
		position: make(map[string]int),
	}
	for _, dep := range deps {
		if _, err := res.resolve(ctx, dep); err != nil {
			return domain.ActivatedSet{}, err
		}
	}
	return domain.NewActivatedSet(res.pkgs), nil
}

func (res *resolution) resolve(ctx context.Context, dep domain.Dependency) (domain.PackageID, error) {
	if err := ctx.Err(); err != nil {
		return domain.PackageID{}, err
	}

	c, err := res.pick(dep)
	if err != nil {
		return domain.PackageID{}, err
	}

	if i, ok := res.position[c.id.Name]; ok {
		existing := res.pkgs[i].PackageID
		if existing != c.id {
			err := zerr.With(domain.ErrVersionConflict, "package", c.id.Name)
			err = zerr.With(err, "selected", existing.Version)
			return domain.PackageID{}, zerr.With(err, "requested", c.id.Version)
		}
		return existing, nil
	}

	// Registered before descending so cycles terminate.
	i := len(res.pkgs)
	res.position[c.id.Name] = i
	res.pkgs = append(res.pkgs, domain.ActivatedPackage{PackageID: c.id})

	for _, child := range c.deps {
		id, err := res.resolve(ctx, child)
		if err != nil {
			return domain.PackageID{}, zerr.With(err, "required_by", c.id.String())
		}
		res.pkgs[i].Deps = append(res.pkgs[i].Deps, id)
	}
	return c.id, nil
}

// pick returns the newest candidate satisfying dep. A package already selected
// is preferred when it satisfies the constraint.
func (res *resolution) pick(dep domain.Dependency) (candidate, error) {
	candidates := res.idx[dep.Key]

	if i, ok := res.position[dep.Name]; ok {
		selected := res.pkgs[i].PackageID
		for _, c := range candidates {
			if c.id == selected && c.match(dep.Constraint) {
				return c, nil
			}
		}
	}

	for _, c := range candidates {
		if c.match(dep.Constraint) {
			return c, nil
		}
	}

	if !isConstraint(dep.Constraint) && len(candidates) > 0 {
		err := zerr.With(domain.ErrInvalidConstraint, "package", dep.Key)
		return candidate{}, zerr.With(err, "constraint", dep.Constraint)
	}
	err := zerr.With(domain.ErrNoMatchingVersion, "package", dep.Key)
	return candidate{}, zerr.With(err, "constraint", dep.Constraint)
}

// isConstraint reports whether s is empty or a constraint go-version understands.
func isConstraint(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" || s == "latest" {
		return true
	}
	_, err := version.NewConstraint(s)
	return err == nil
}
