package domain

import (
	"slices"
	"strings"
)

// UninstallPlan is the set of packages selected for removal.
// Membership is tracked by name; insertion order follows the planning traversal
// and carries no meaning beyond stable reporting.
type UninstallPlan struct {
	entries map[string]Locked
	order   []string
}

// NewUninstallPlan creates an empty plan.
func NewUninstallPlan() *UninstallPlan {
	return &UninstallPlan{
		entries: make(map[string]Locked),
	}
}

// Add stages a package for removal. It returns false if the name was already staged.
func (p *UninstallPlan) Add(id PackageID) bool {
	if _, ok := p.entries[id.Name]; ok {
		return false
	}
	p.entries[id.Name] = id.Locked()
	p.order = append(p.order, id.Name)
	return true
}

// Drop withdraws a staged package.
func (p *UninstallPlan) Drop(name string) {
	if _, ok := p.entries[name]; !ok {
		return
	}
	delete(p.entries, name)
	p.order = slices.DeleteFunc(p.order, func(n string) bool { return n == name })
}

// Has reports whether the name is staged.
func (p *UninstallPlan) Has(name string) bool {
	_, ok := p.entries[name]
	return ok
}

// Get returns the locked entry of a staged package.
func (p *UninstallPlan) Get(name string) (Locked, bool) {
	l, ok := p.entries[name]
	return l, ok
}

// Len returns the number of staged packages.
func (p *UninstallPlan) Len() int {
	return len(p.entries)
}

// IsEmpty reports whether nothing is staged.
func (p *UninstallPlan) IsEmpty() bool {
	return len(p.entries) == 0
}

// Packages returns the staged packages in insertion order.
func (p *UninstallPlan) Packages() []PackageID {
	ids := make([]PackageID, 0, len(p.order))
	for _, name := range p.order {
		l := p.entries[name]
		ids = append(ids, PackageID{Name: name, Version: l.Version, Source: l.Source})
	}
	return ids
}

// Sorted returns the staged packages ordered by name.
func (p *UninstallPlan) Sorted() []PackageID {
	ids := p.Packages()
	slices.SortFunc(ids, func(a, b PackageID) int {
		return strings.Compare(a.Name, b.Name)
	})
	return ids
}

// Equal reports whether the plan covers exactly the given Backtracked index,
// comparing names, versions and sources.
func (p *UninstallPlan) Equal(b Backtracked) bool {
	if len(p.entries) != len(b) {
		return false
	}
	for name, l := range p.entries {
		other, ok := b[name]
		if !ok || other != l {
			return false
		}
	}
	return true
}
