// Package planner decides which activated packages can be removed safely.
package planner

import (
	"fmt"

	"github.com/poacpm/poac/internal/core/domain"
	"go.trai.ch/zerr"
)

// Conflict records a package that was kept because another package still depends on it.
type Conflict struct {
	// Package is the package that was refused.
	Package domain.PackageID
	// Dependent is the package outside the plan that depends on it.
	Dependent domain.PackageID
}

// String renders the warning shown to the user.
func (c Conflict) String() string {
	return fmt.Sprintf("%s can not be deleted because %s depends on it", c.Package, c.Dependent)
}

// Err returns the conflict as a RemovalConflict error carrying both identities.
func (c Conflict) Err() error {
	err := zerr.With(domain.ErrRemovalConflict, "package", c.Package.String())
	return zerr.With(err, "dependent", c.Dependent.String())
}

// Result is the outcome of planning.
type Result struct {
	Plan      *domain.UninstallPlan
	Conflicts []Conflict
}

// Planner computes removal plans over a single Activated Set.
// The set is never modified.
type Planner struct {
	set        domain.ActivatedSet
	index      map[string]int
	dependents map[string][]int
}

// New indexes the Activated Set by name and by reverse edge.
func New(set domain.ActivatedSet) *Planner {
	p := &Planner{
		set:        set,
		index:      make(map[string]int, len(set.Activated)),
		dependents: make(map[string][]int),
	}
	for i, pkg := range set.Activated {
		p.index[pkg.Name] = i
		for _, dep := range pkg.Deps {
			p.dependents[dep.Name] = append(p.dependents[dep.Name], i)
		}
	}
	return p
}

// Plan is a convenience wrapper around New(set).Plan(targets).
func Plan(set domain.ActivatedSet, targets []string) Result {
	return New(set).Plan(targets)
}

// Plan stages every target together with the part of its dependency subtree that
// nothing outside the plan needs. Targets are processed in order and merged into one plan.
func (p *Planner) Plan(targets []string) Result {
	res := Result{Plan: domain.NewUninstallPlan()}
	for _, target := range targets {
		p.visit(domain.NormalizeName(target), &res)
	}
	p.settle(&res)
	res.Conflicts = reconcile(res.Conflicts, res.Plan)
	return res
}

// visit walks the subtree rooted at name depth-first with an explicit stack.
func (p *Planner) visit(name string, res *Result) {
	stack := []string{name}
	for len(stack) > 0 {
		n := len(stack) - 1
		current := stack[n]
		stack = stack[:n]

		i, ok := p.index[current]
		if !ok {
			continue
		}
		pkg := &p.set.Activated[i]

		if c, blocked := p.guard(pkg, res.Plan); blocked {
			res.Conflicts = append(res.Conflicts, c)
			continue
		}
		if !res.Plan.Add(pkg.PackageID) {
			continue
		}
		for j := len(pkg.Deps) - 1; j >= 0; j-- {
			stack = append(stack, pkg.Deps[j].Name)
		}
	}
}

// guard reports the first package that still needs pkg. Packages already staged
// and the direct children of pkg are not counted.
func (p *Planner) guard(pkg *domain.ActivatedPackage, plan *domain.UninstallPlan) (Conflict, bool) {
	for _, i := range p.dependents[pkg.Name] {
		other := &p.set.Activated[i]
		if other.Name == pkg.Name || plan.Has(other.Name) || pkg.DependsOn(other.Name) {
			continue
		}
		return Conflict{Package: pkg.PackageID, Dependent: other.PackageID}, true
	}
	return Conflict{}, false
}

// settle withdraws staged packages that are still referenced from outside the plan.
// Withdrawing one package can expose another, so it repeats until nothing changes.
func (p *Planner) settle(res *Result) {
	for changed := true; changed; {
		changed = false
		for _, id := range res.Plan.Packages() {
			for _, i := range p.dependents[id.Name] {
				other := p.set.Activated[i].PackageID
				if res.Plan.Has(other.Name) {
					continue
				}
				res.Plan.Drop(id.Name)
				res.Conflicts = append(res.Conflicts, Conflict{Package: id, Dependent: other})
				changed = true
				break
			}
		}
	}
}

// reconcile keeps only conflicts that hold for the final plan: the package stays
// and its dependent stays. Each (package, dependent) pair is reported once.
func reconcile(conflicts []Conflict, plan *domain.UninstallPlan) []Conflict {
	type pair struct{ pkg, dependent string }

	seen := make(map[pair]struct{}, len(conflicts))
	out := conflicts[:0]
	for _, c := range conflicts {
		if plan.Has(c.Package.Name) || plan.Has(c.Dependent.Name) {
			continue
		}
		k := pair{c.Package.Name, c.Dependent.Name}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
