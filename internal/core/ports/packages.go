package ports

// PackageStore performs the destructive operations on installed package directories.
//
//go:generate mockgen -source=packages.go -destination=mocks/mock_packages.go -package=mocks
type PackageStore interface {
	// Remove deletes an installed package directory.
	// It returns false, nil when the directory does not exist.
	Remove(path string) (bool, error)

	// RemoveAll deletes the whole installed dependencies directory.
	RemoveAll(depsDir string) error
}
