package resolver

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-version"
	"github.com/poacpm/poac/internal/adapters/manifest"
	"github.com/poacpm/poac/internal/core/domain"
	"go.trai.ch/zerr"
)

// candidate is one installed version of a package.
type candidate struct {
	id     domain.PackageID
	semver *version.Version
	deps   []domain.Dependency
}

// cachedFile is a parsed package manifest together with the mtime it was read at.
type cachedFile struct {
	modTime time.Time
	file    *manifest.PackageFile
}

// index groups installed candidates by manifest key, newest first.
type index map[string][]candidate

// scan reads every deps/<dir>/poac.yml. Directories without a manifest are ignored.
func (r *Local) scan(depsDir string) (index, error) {
	entries, err := os.ReadDir(depsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return index{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInstalledReadFailed.Error()), "path", depsDir)
	}

	idx := make(index)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(depsDir, entry.Name(), domain.ManifestFileName)
		pf, err := r.readPackageFile(path)
		if err != nil {
			return nil, err
		}
		if pf == nil {
			continue
		}

		c, err := newCandidate(pf)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		key := c.id.Source.ManifestKey(c.id.Name)
		idx[key] = append(idx[key], c)
	}

	for key := range idx {
		slices.SortStableFunc(idx[key], compareCandidates)
	}
	return idx, nil
}

// readPackageFile returns nil, nil when no manifest exists at path.
func (r *Local) readPackageFile(path string) (*manifest.PackageFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInstalledReadFailed.Error()), "path", path)
	}

	if cached, ok := r.cache.Get(path); ok && cached.modTime.Equal(info.ModTime()) {
		return cached.file, nil
	}

	pf, err := manifest.ReadPackageFile(path)
	if err != nil {
		return nil, err
	}
	r.cache.Add(path, cachedFile{modTime: info.ModTime(), file: pf})
	return pf, nil
}

func newCandidate(pf *manifest.PackageFile) (candidate, error) {
	source, err := domain.ParseSource(pf.Source)
	if err != nil {
		return candidate{}, err
	}

	c := candidate{
		id: domain.PackageID{
			Name:    domain.NormalizeName(pf.Name),
			Version: strings.TrimSpace(pf.Version),
			Source:  source,
		},
	}
	if v, err := version.NewVersion(c.id.Version); err == nil {
		c.semver = v
	}

	keys := make([]string, 0, len(pf.Deps))
	for key := range pf.Deps {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, raw := range keys {
		key := domain.NormalizeName(raw)
		depSource, name := domain.SplitManifestKey(key)
		c.deps = append(c.deps, domain.Dependency{
			Key:        key,
			Name:       name,
			Source:     depSource,
			Constraint: pf.Deps[raw].Constraint,
		})
	}
	return c, nil
}

// compareCandidates orders parseable versions newest first, then the rest by string.
func compareCandidates(a, b candidate) int {
	switch {
	case a.semver != nil && b.semver != nil:
		return b.semver.Compare(a.semver)
	case a.semver != nil:
		return -1
	case b.semver != nil:
		return 1
	default:
		return strings.Compare(b.id.Version, a.id.Version)
	}
}

// match reports whether the candidate satisfies the constraint.
// Constraints go-version cannot parse, such as branch-like GitHub tags, match exactly.
func (c candidate) match(constraint string) bool {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" || constraint == "*" || constraint == "latest" {
		return true
	}
	if c.id.Version == constraint {
		return true
	}
	if c.semver == nil {
		return false
	}
	cs, err := version.NewConstraint(constraint)
	if err != nil {
		return false
	}
	return cs.Check(c.semver)
}
