package ports

import "github.com/poacpm/poac/internal/core/domain"

// LockStore persists a previously resolved Activated Set keyed by a manifest fingerprint.
// The lock is a cache: a missing or stale lock is a miss, not a failure.
//
//go:generate mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type LockStore interface {
	// Load returns the locked Activated Set if the lock at path exists and was written
	// for the given fingerprint. Returns nil, nil on a miss.
	Load(path, fingerprint string) (*domain.ActivatedSet, error)

	// Save writes the Activated Set to path under the given fingerprint.
	Save(path, fingerprint string, set domain.ActivatedSet) error

	// Remove deletes the lock at path. A missing lock is not an error.
	Remove(path string) error
}
