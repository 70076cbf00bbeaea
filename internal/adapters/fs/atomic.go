package fs

import (
	"os"
	"path/filepath"

	"github.com/poacpm/poac/internal/core/domain"
	"go.trai.ch/zerr"
)

// tempPattern names the scratch file created next to the target.
const tempPattern = ".poac-tmp-*"

// AtomicWrite writes data to path through a temporary file in the same directory
// followed by a rename, so readers never observe a partially written file.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create parent directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temp file"), "path", dir)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Sync(); err != nil {
		return zerr.Wrap(err, "failed to sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return zerr.Wrap(err, "failed to set permissions")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to rename temp file"), "path", path)
	}

	tmp = nil
	return nil
}
