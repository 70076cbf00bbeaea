// Package fs provides file system adapters for installed packages and atomic file writes.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/poacpm/poac/internal/core/domain"
	"go.trai.ch/zerr"
)

// PackageStore implements ports.PackageStore on the local file system.
type PackageStore struct{}

// NewPackageStore creates a new PackageStore.
func NewPackageStore() *PackageStore {
	return &PackageStore{}
}

// Remove deletes an installed package directory.
// It returns false, nil when nothing exists at path.
func (s *PackageStore) Remove(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrPackageRemoveFailed.Error()), "path", path)
	}

	if err := os.RemoveAll(path); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrPackageRemoveFailed.Error()), "path", path)
	}
	return true, nil
}

// RemoveAll deletes the whole installed dependencies directory.
// A missing directory is not an error.
func (s *PackageStore) RemoveAll(depsDir string) error {
	if err := os.RemoveAll(depsDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageRemoveFailed.Error()), "path", depsDir)
	}
	return nil
}
