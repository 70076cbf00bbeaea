// Package ports defines the core interfaces for the application.
package ports

import "github.com/poacpm/poac/internal/core/domain"

// Manifest is an editable, loaded poac.yml document.
// Edits only touch the deps section; every other key is preserved on save.
type Manifest interface {
	// Deps returns the declared dependencies in document order.
	Deps() []domain.Dependency

	// HasDeps reports whether the document has a deps section.
	HasDeps() bool

	// RemoveDep deletes a deps entry by its exact manifest key.
	// It returns false if the key was not present.
	RemoveDep(key string) bool

	// DropDeps removes the deps section entirely.
	DropDeps()

	// Fingerprint returns a stable digest of the deps section, used to key the lock file.
	Fingerprint() string

	// Clone returns an independent copy of the document.
	Clone() Manifest

	// Marshal encodes the document.
	Marshal() ([]byte, error)
}

// ManifestStore loads and saves manifests.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestStore interface {
	// Load reads the manifest at path.
	Load(path string) (Manifest, error)

	// Save writes the manifest to path, replacing the previous content atomically.
	Save(path string, doc Manifest) error
}
