package manifest

import (
	"errors"
	"io/fs"
	"os"

	pfs "github.com/poacpm/poac/internal/adapters/fs"
	"github.com/poacpm/poac/internal/core/domain"
	"github.com/poacpm/poac/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.ManifestStore on the local file system.
type Store struct{}

// NewStore creates a new manifest Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the manifest at path.
func (s *Store) Load(path string) (ports.Manifest, error) {
	//nolint:gosec // Path is derived from the discovered project root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return doc, nil
}

// Save encodes m and atomically replaces the file at path.
func (s *Store) Save(path string, m ports.Manifest) error {
	data, err := m.Marshal()
	if err != nil {
		return zerr.With(err, "path", path)
	}
	if err := pfs.AtomicWrite(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}
	return nil
}

// ReadPackageFile reads the manifest of an installed package.
func ReadPackageFile(path string) (*PackageFile, error) {
	//nolint:gosec // Path is built from the deps directory listing
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var pf PackageFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}
	return &pf, nil
}
