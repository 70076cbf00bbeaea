package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArguments is returned when uninstall is invoked without package names and without --all.
	ErrInvalidArguments = zerr.New("no packages specified, pass package names or --all")

	// ErrUnknownPackage is returned when a requested package is not declared in the manifest.
	ErrUnknownPackage = zerr.New("there is no such package in the dependencies")

	// ErrRemovalConflict is reported when a package cannot be removed because another package depends on it.
	ErrRemovalConflict = zerr.New("package can not be deleted")

	// ErrInvalidSource is returned when a package source is not recognized.
	ErrInvalidSource = zerr.New("invalid package source")

	// ErrManifestNotFound is returned when no manifest can be found from the working directory.
	ErrManifestNotFound = zerr.New("could not find poac.yml")

	// ErrManifestReadFailed is returned when the manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestWriteFailed is returned when the manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrMissingDepsSection is returned when the manifest declares no dependencies.
	ErrMissingDepsSection = zerr.New("could not read deps in poac.yml")

	// ErrLockReadFailed is returned when the lock file cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockParseFailed is returned when the lock file cannot be parsed.
	ErrLockParseFailed = zerr.New("failed to parse lock file")

	// ErrLockWriteFailed is returned when the lock file cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lock file")

	// ErrLockRemoveFailed is returned when the lock file cannot be removed.
	ErrLockRemoveFailed = zerr.New("failed to remove lock file")

	// ErrPackageRemoveFailed is returned when an installed package directory cannot be removed.
	ErrPackageRemoveFailed = zerr.New("failed to remove installed package")

	// ErrInstalledReadFailed is returned when the installed packages directory cannot be read.
	ErrInstalledReadFailed = zerr.New("failed to read installed packages")

	// ErrResolveFailed is returned when the dependencies cannot be resolved.
	ErrResolveFailed = zerr.New("failed to resolve dependencies")

	// ErrNoMatchingVersion is returned when no installed version satisfies a constraint.
	ErrNoMatchingVersion = zerr.New("no installed version satisfies the constraint")

	// ErrInvalidConstraint is returned when a version constraint cannot be parsed.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrVersionConflict is returned when resolution would activate two versions of the same package.
	ErrVersionConflict = zerr.New("conflicting versions of the same package")

	// ErrConfirmationFailed is returned when the confirmation answer cannot be read.
	ErrConfirmationFailed = zerr.New("failed to read confirmation")

	// ErrInvalidSetting is returned when an environment setting cannot be parsed.
	ErrInvalidSetting = zerr.New("invalid setting")

	// ErrUninstallFailed is returned when the uninstall command fails after planning.
	ErrUninstallFailed = zerr.New("uninstall failed")
)
