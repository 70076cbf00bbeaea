package domain

// Dependency represents a dependency declared in the manifest.
// This is the input representation before resolution (e.g., from poac.yml).
type Dependency struct {
	// Key is the exact key in the manifest deps section (e.g., "github/owner/repo").
	Key string

	// Name is the package name without the source prefix (e.g., "owner/repo").
	Name string

	// Source is where the package comes from.
	Source Source

	// Constraint is the requested version or tag (e.g., ">=1.70.0", "v0.2.1").
	Constraint string
}

// Matches reports whether a user-supplied target refers to this dependency,
// either by its bare name or by its manifest key.
func (d Dependency) Matches(target string) bool {
	target = NormalizeName(target)
	return target == d.Name || target == d.Key
}
