package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the project manifest.
	ManifestFileName = "poac.yml"

	// LockFileName is the name of the lock file.
	LockFileName = "poac.lock"

	// DepsDirName is the name of the installed dependencies directory.
	DepsDirName = "deps"

	// DepsKey is the manifest section holding declared dependencies.
	DepsKey = "deps"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Layout locates the files of a single project.
// Every path is derived from Root so callers never depend on the process working directory.
type Layout struct {
	Root string
}

// NewLayout creates a Layout rooted at dir.
func NewLayout(dir string) Layout {
	return Layout{Root: filepath.Clean(dir)}
}

// ManifestPath returns the path of poac.yml.
func (l Layout) ManifestPath() string {
	return filepath.Join(l.Root, ManifestFileName)
}

// LockPath returns the path of poac.lock.
func (l Layout) LockPath() string {
	return filepath.Join(l.Root, LockFileName)
}

// DepsDir returns the directory holding installed packages.
func (l Layout) DepsDir() string {
	return filepath.Join(l.Root, DepsDirName)
}

// PackageDir returns the install directory of a package.
func (l Layout) PackageDir(id PackageID) string {
	return filepath.Join(l.DepsDir(), InstallDirName(id))
}
