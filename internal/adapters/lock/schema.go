package lock

// File represents the structure of the poac.lock file.
type File struct {
	Timestamp    string       `yaml:"timestamp"`
	Dependencies []PackageDTO `yaml:"dependencies"`
}

// PackageDTO represents one activated package in the lock file.
type PackageDTO struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Source  string   `yaml:"source"`
	Deps    []DepDTO `yaml:"deps,omitempty"`
}

// DepDTO represents a direct dependency edge of a locked package.
type DepDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Source  string `yaml:"source"`
}
