package resolver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poacpm/poac/internal/adapters/resolver"
	"github.com/poacpm/poac/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// install writes deps/<dir>/poac.yml for a package.
func install(t *testing.T, depsDir string, id domain.PackageID, manifest string) {
	t.Helper()
	dir := filepath.Join(depsDir, domain.InstallDirName(id))
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte(manifest), domain.FilePerm))
}

func reg(name, ver string) domain.PackageID {
	return domain.PackageID{Name: name, Version: ver, Source: domain.SourceRegistry}
}

func dep(key, constraint string) domain.Dependency {
	source, name := domain.SplitManifestKey(key)
	return domain.Dependency{Key: key, Name: name, Source: source, Constraint: constraint}
}

func newResolver(t *testing.T) *resolver.Local {
	t.Helper()
	r, err := resolver.NewLocal()
	require.NoError(t, err)
	return r
}

func TestLocal_Resolve_Transitive(t *testing.T) {
	depsDir := filepath.Join(t.TempDir(), domain.DepsDirName)
	install(t, depsDir, reg("a", "1.0.0"), "name: a\nversion: 1.0.0\ndeps:\n  b: \">=2.0.0\"\n")
	install(t, depsDir, reg("b", "2.1.0"), "name: b\nversion: 2.1.0\n")
	install(t, depsDir, reg("c", "0.3.0"), "name: c\nversion: 0.3.0\n")

	set, err := newResolver(t).Resolve(context.Background(), depsDir, []domain.Dependency{
		dep("a", "1.0.0"),
		dep("c", ">=0.1.0"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	a, ok := set.Find("a")
	require.True(t, ok)
	assert.Equal(t, []domain.PackageID{reg("b", "2.1.0")}, a.Deps)
	assert.Equal(t, domain.Locked{Version: "0.3.0", Source: domain.SourceRegistry}, set.Backtracked["c"])
}

func TestLocal_Resolve_PicksNewestMatching(t *testing.T) {
	depsDir := filepath.Join(t.TempDir(), domain.DepsDirName)
	install(t, depsDir, reg("a", "1.0.0"), "name: a\nversion: 1.0.0\n")
	install(t, depsDir, reg("a", "1.5.0"), "name: a\nversion: 1.5.0\n")
	install(t, depsDir, reg("a", "2.0.0"), "name: a\nversion: 2.0.0\n")

	set, err := newResolver(t).Resolve(context.Background(), depsDir, []domain.Dependency{dep("a", "< 2.0.0")})
	require.NoError(t, err)

	assert.Equal(t, "1.5.0", set.Backtracked["a"].Version)
}

func TestLocal_Resolve_GitHubTag(t *testing.T) {
	depsDir := filepath.Join(t.TempDir(), domain.DepsDirName)
	id := domain.PackageID{Name: "owner/repo", Version: "nightly", Source: domain.SourceGitHub}
	install(t, depsDir, id, "name: owner/repo\nversion: nightly\nsource: github\n")

	set, err := newResolver(t).Resolve(context.Background(), depsDir, []domain.Dependency{dep("github/owner/repo", "nightly")})
	require.NoError(t, err)

	assert.Equal(t, domain.Locked{Version: "nightly", Source: domain.SourceGitHub}, set.Backtracked["owner/repo"])
}

func TestLocal_Resolve_Cycle(t *testing.T) {
	depsDir := filepath.Join(t.TempDir(), domain.DepsDirName)
	install(t, depsDir, reg("a", "1.0.0"), "name: a\nversion: 1.0.0\ndeps:\n  b: 1.0.0\n")
	install(t, depsDir, reg("b", "1.0.0"), "name: b\nversion: 1.0.0\ndeps:\n  a: 1.0.0\n")

	set, err := newResolver(t).Resolve(context.Background(), depsDir, []domain.Dependency{dep("a", "")})
	require.NoError(t, err)

	a, _ := set.Find("a")
	b, _ := set.Find("b")
	assert.True(t, a.DependsOn("b"))
	assert.True(t, b.DependsOn("a"))
}

func TestLocal_Resolve_Errors(t *testing.T) {
	depsDir := filepath.Join(t.TempDir(), domain.DepsDirName)
	install(t, depsDir, reg("a", "1.0.0"), "name: a\nversion: 1.0.0\ndeps:\n  shared: \"<2.0.0\"\n")
	install(t, depsDir, reg("b", "1.0.0"), "name: b\nversion: 1.0.0\ndeps:\n  shared: \">=2.0.0\"\n")
	install(t, depsDir, reg("shared", "1.0.0"), "name: shared\nversion: 1.0.0\n")
	install(t, depsDir, reg("shared", "2.0.0"), "name: shared\nversion: 2.0.0\n")

	tests := []struct {
		name    string
		deps    []domain.Dependency
		wantErr error
	}{
		{
			name:    "Version Conflict",
			deps:    []domain.Dependency{dep("a", ""), dep("b", "")},
			wantErr: domain.ErrVersionConflict,
		},
		{
			name:    "Not Installed",
			deps:    []domain.Dependency{dep("missing", "1.0.0")},
			wantErr: domain.ErrNoMatchingVersion,
		},
		{
			name:    "No Matching Version",
			deps:    []domain.Dependency{dep("shared", ">=3.0.0")},
			wantErr: domain.ErrNoMatchingVersion,
		},
		{
			name:    "Invalid Constraint",
			deps:    []domain.Dependency{dep("shared", ">>1")},
			wantErr: domain.ErrInvalidConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newResolver(t).Resolve(context.Background(), depsDir, tt.deps)
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLocal_Resolve_MissingDepsDir(t *testing.T) {
	depsDir := filepath.Join(t.TempDir(), domain.DepsDirName)

	set, err := newResolver(t).Resolve(context.Background(), depsDir, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestLocal_Resolve_IgnoresDirsWithoutManifest(t *testing.T) {
	depsDir := filepath.Join(t.TempDir(), domain.DepsDirName)
	install(t, depsDir, reg("a", "1.0.0"), "name: a\nversion: 1.0.0\n")
	require.NoError(t, os.MkdirAll(filepath.Join(depsDir, "stray"), domain.DirPerm))

	set, err := newResolver(t).Resolve(context.Background(), depsDir, []domain.Dependency{dep("a", "")})
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}

func TestLocal_Resolve_PicksUpChangedManifest(t *testing.T) {
	depsDir := filepath.Join(t.TempDir(), domain.DepsDirName)
	id := reg("a", "1.0.0")
	install(t, depsDir, id, "name: a\nversion: 1.0.0\n")
	install(t, depsDir, reg("b", "1.0.0"), "name: b\nversion: 1.0.0\n")
	r := newResolver(t)

	set, err := r.Resolve(context.Background(), depsDir, []domain.Dependency{dep("a", "")})
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())

	path := filepath.Join(depsDir, domain.InstallDirName(id), domain.ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte("name: a\nversion: 1.0.0\ndeps:\n  b: 1.0.0\n"), domain.FilePerm))
	// Force a distinct mtime regardless of file system timestamp granularity.
	info, err := os.Stat(path)
	require.NoError(t, err)
	later := info.ModTime().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	set, err = r.Resolve(context.Background(), depsDir, []domain.Dependency{dep("a", "")})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestLocal_Resolve_Canceled(t *testing.T) {
	depsDir := filepath.Join(t.TempDir(), domain.DepsDirName)
	install(t, depsDir, reg("a", "1.0.0"), "name: a\nversion: 1.0.0\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newResolver(t).Resolve(ctx, depsDir, []domain.Dependency{dep("a", "")})
	require.ErrorIs(t, err, context.Canceled)
}
