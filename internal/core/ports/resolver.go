package ports

import (
	"context"

	"github.com/poacpm/poac/internal/core/domain"
)

// Resolver turns declared dependencies into a fully resolved Activated Set.
// Implementations guarantee at most one version/source per package name.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Resolve resolves deps against the packages available under depsDir.
	Resolve(ctx context.Context, depsDir string, deps []domain.Dependency) (domain.ActivatedSet, error)
}
