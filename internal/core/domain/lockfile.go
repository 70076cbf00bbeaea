package domain

// Locked is the flattened, name-less part of a package identity.
type Locked struct {
	Version string
	Source  Source
}

// Backtracked is a name-keyed index over an Activated Set.
// It is used for fast existence checks and for comparing a removal plan against the lock.
type Backtracked map[string]Locked

// ActivatedPackage is a resolved package together with its direct dependencies.
type ActivatedPackage struct {
	PackageID

	// Deps are the direct dependencies, each present elsewhere in the same Activated Set.
	Deps []PackageID
}

// DependsOn reports whether the package has a direct edge to the named package.
func (p *ActivatedPackage) DependsOn(name string) bool {
	for _, dep := range p.Deps {
		if dep.Name == name {
			return true
		}
	}
	return false
}

// ActivatedSet is the complete resolved dependency graph of a project.
// At most one version/source exists per name.
type ActivatedSet struct {
	Activated   []ActivatedPackage
	Backtracked Backtracked
}

// NewActivatedSet builds an Activated Set and derives its Backtracked index.
func NewActivatedSet(pkgs []ActivatedPackage) ActivatedSet {
	backtracked := make(Backtracked, len(pkgs))
	for _, p := range pkgs {
		backtracked[p.Name] = p.Locked()
	}
	return ActivatedSet{
		Activated:   pkgs,
		Backtracked: backtracked,
	}
}

// Find returns the activated package with the given name.
func (s ActivatedSet) Find(name string) (ActivatedPackage, bool) {
	for _, p := range s.Activated {
		if p.Name == name {
			return p, true
		}
	}
	return ActivatedPackage{}, false
}

// Has reports whether the name is present in the Backtracked index.
func (s ActivatedSet) Has(name string) bool {
	_, ok := s.Backtracked[name]
	return ok
}

// Len returns the number of activated packages.
func (s ActivatedSet) Len() int {
	return len(s.Activated)
}

// Without returns a new Activated Set with every planned package filtered out.
// The receiver is left untouched.
func (s ActivatedSet) Without(plan *UninstallPlan) ActivatedSet {
	kept := make([]ActivatedPackage, 0, len(s.Activated))
	for _, p := range s.Activated {
		if plan.Has(p.Name) {
			continue
		}
		kept = append(kept, p)
	}
	return NewActivatedSet(kept)
}
