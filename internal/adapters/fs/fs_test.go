package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/poacpm/poac/internal/adapters/fs"
	"github.com/poacpm/poac/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageStore_Remove(t *testing.T) {
	t.Run("Existing Directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "deps", "boost-config-1.70.0")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "include"), domain.DirPerm))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "include", "config.hpp"), []byte("//"), domain.FilePerm))

		found, err := fs.NewPackageStore().Remove(dir)
		require.NoError(t, err)

		assert.True(t, found)
		assert.NoDirExists(t, dir)
	})

	t.Run("Missing Directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "deps", "missing-1.0.0")

		found, err := fs.NewPackageStore().Remove(dir)
		require.NoError(t, err)

		assert.False(t, found)
	})

	t.Run("Leaves Siblings", func(t *testing.T) {
		depsDir := filepath.Join(t.TempDir(), "deps")
		target := filepath.Join(depsDir, "a-1.0.0")
		sibling := filepath.Join(depsDir, "b-1.0.0")
		require.NoError(t, os.MkdirAll(target, domain.DirPerm))
		require.NoError(t, os.MkdirAll(sibling, domain.DirPerm))

		_, err := fs.NewPackageStore().Remove(target)
		require.NoError(t, err)

		assert.NoDirExists(t, target)
		assert.DirExists(t, sibling)
	})
}

func TestPackageStore_RemoveAll(t *testing.T) {
	t.Run("Existing Directory", func(t *testing.T) {
		root := t.TempDir()
		depsDir := filepath.Join(root, "deps")
		require.NoError(t, os.MkdirAll(filepath.Join(depsDir, "a-1.0.0"), domain.DirPerm))
		manifest := filepath.Join(root, "poac.yml")
		require.NoError(t, os.WriteFile(manifest, []byte("name: app\n"), domain.FilePerm))

		require.NoError(t, fs.NewPackageStore().RemoveAll(depsDir))

		assert.NoDirExists(t, depsDir)
		assert.FileExists(t, manifest)
	})

	t.Run("Missing Directory", func(t *testing.T) {
		depsDir := filepath.Join(t.TempDir(), "deps")

		assert.NoError(t, fs.NewPackageStore().RemoveAll(depsDir))
	})
}

func TestAtomicWrite(t *testing.T) {
	t.Run("New File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "poac.lock")

		require.NoError(t, fs.AtomicWrite(path, []byte("timestamp: abc\n"), domain.FilePerm))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "timestamp: abc\n", string(data))
	})

	t.Run("Overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "poac.yml")
		require.NoError(t, os.WriteFile(path, []byte("old"), domain.FilePerm))

		require.NoError(t, fs.AtomicWrite(path, []byte("new"), domain.FilePerm))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("No Leftover Temp Files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "poac.yml")

		require.NoError(t, fs.AtomicWrite(path, []byte("deps: {}\n"), domain.FilePerm))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "poac.yml", entries[0].Name())
	})

	t.Run("Permissions", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("file modes are not enforced on windows")
		}
		path := filepath.Join(t.TempDir(), "poac.lock")

		require.NoError(t, fs.AtomicWrite(path, []byte("x"), domain.PrivateFilePerm))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(domain.PrivateFilePerm), info.Mode().Perm())
	})

	t.Run("Target Is Directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "poac.yml")
		require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), domain.DirPerm))

		err := fs.AtomicWrite(path, []byte("x"), domain.FilePerm)
		require.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp file should be cleaned up")
	})
}
