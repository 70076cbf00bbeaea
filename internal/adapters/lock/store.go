// Package lock persists resolved Activated Sets as poac.lock files.
package lock

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	pfs "github.com/poacpm/poac/internal/adapters/fs"
	"github.com/poacpm/poac/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.LockStore using a YAML file.
type Store struct{}

// NewStore creates a new lock Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the lock at path. A missing lock, or one written for another
// fingerprint, is a miss and returns nil, nil.
func (s *Store) Load(path, fingerprint string) (*domain.ActivatedSet, error) {
	//nolint:gosec // Path is derived from the discovered project root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockReadFailed.Error()), "path", path)
	}

	set, stamp, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if stamp != fingerprint {
		return nil, nil
	}
	return &set, nil
}

// Save writes the Activated Set to path under the given fingerprint.
func (s *Store) Save(path, fingerprint string, set domain.ActivatedSet) error {
	data, err := Encode(fingerprint, set)
	if err != nil {
		return zerr.With(err, "path", path)
	}
	if err := pfs.AtomicWrite(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockWriteFailed.Error()), "path", path)
	}
	return nil
}

// Remove deletes the lock at path. A missing lock is not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrLockRemoveFailed.Error()), "path", path)
	}
	return nil
}

// Encode renders a lock file. Packages and their deps are sorted by name
// so the same set always produces the same bytes.
func Encode(fingerprint string, set domain.ActivatedSet) ([]byte, error) {
	file := File{
		Timestamp:    fingerprint,
		Dependencies: make([]PackageDTO, 0, len(set.Activated)),
	}
	for _, pkg := range set.Activated {
		dto := PackageDTO{
			Name:    pkg.Name,
			Version: pkg.Version,
			Source:  string(pkg.Source),
		}
		for _, dep := range pkg.Deps {
			dto.Deps = append(dto.Deps, DepDTO{
				Name:    dep.Name,
				Version: dep.Version,
				Source:  string(dep.Source),
			})
		}
		slices.SortFunc(dto.Deps, func(a, b DepDTO) int { return strings.Compare(a.Name, b.Name) })
		file.Dependencies = append(file.Dependencies, dto)
	}
	slices.SortFunc(file.Dependencies, func(a, b PackageDTO) int { return strings.Compare(a.Name, b.Name) })

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockWriteFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockWriteFailed.Error())
	}
	return buf.Bytes(), nil
}

// Decode parses a lock file and returns the Activated Set with the fingerprint it was written for.
func Decode(data []byte) (domain.ActivatedSet, string, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.ActivatedSet{}, "", zerr.Wrap(err, domain.ErrLockParseFailed.Error())
	}

	pkgs := make([]domain.ActivatedPackage, 0, len(file.Dependencies))
	seen := make(map[string]struct{}, len(file.Dependencies))
	for _, dto := range file.Dependencies {
		id, err := toID(dto.Name, dto.Version, dto.Source)
		if err != nil {
			return domain.ActivatedSet{}, "", err
		}
		if _, dup := seen[id.Name]; dup {
			return domain.ActivatedSet{}, "", zerr.With(domain.ErrLockParseFailed, "duplicate_package", id.Name)
		}
		seen[id.Name] = struct{}{}

		pkg := domain.ActivatedPackage{PackageID: id}
		for _, dep := range dto.Deps {
			depID, err := toID(dep.Name, dep.Version, dep.Source)
			if err != nil {
				return domain.ActivatedSet{}, "", err
			}
			pkg.Deps = append(pkg.Deps, depID)
		}
		pkgs = append(pkgs, pkg)
	}
	return domain.NewActivatedSet(pkgs), file.Timestamp, nil
}

func toID(name, version, source string) (domain.PackageID, error) {
	src, err := domain.ParseSource(source)
	if err != nil {
		return domain.PackageID{}, zerr.Wrap(err, domain.ErrLockParseFailed.Error())
	}
	name = domain.NormalizeName(name)
	if name == "" {
		return domain.PackageID{}, zerr.With(domain.ErrLockParseFailed, "reason", "package without name")
	}
	return domain.PackageID{Name: name, Version: version, Source: src}, nil
}
