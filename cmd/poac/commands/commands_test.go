package commands_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/poacpm/poac/cmd/poac/commands"
	"github.com/poacpm/poac/internal/adapters/config"
	"github.com/poacpm/poac/internal/app"
	"github.com/poacpm/poac/internal/core/domain"
	"github.com/poacpm/poac/internal/core/ports/mocks"
	"github.com/poacpm/poac/internal/engine/reconciler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	manifests *mocks.MockManifestStore
	locks     *mocks.MockLockStore
	packages  *mocks.MockPackageStore
	confirmer *mocks.MockConfirmer
	logger    *mocks.MockLogger
	manifest  *mocks.MockManifest
	clone     *mocks.MockManifest
}

func setup(t *testing.T) (*commands.CLI, testMocks) {
	t.Helper()
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvAssumeYes, "")
	t.Setenv(config.EnvLogFormat, "")

	ctrl := gomock.NewController(t)
	m := testMocks{
		manifests: mocks.NewMockManifestStore(ctrl),
		locks:     mocks.NewMockLockStore(ctrl),
		packages:  mocks.NewMockPackageStore(ctrl),
		confirmer: mocks.NewMockConfirmer(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		manifest:  mocks.NewMockManifest(ctrl),
		clone:     mocks.NewMockManifest(ctrl),
	}
	rec := reconciler.New(m.packages, m.manifests, m.locks)
	a := app.New(m.manifests, m.locks, mocks.NewMockResolver(ctrl), m.packages, m.confirmer, rec, m.logger)
	return commands.New(a, config.NewLoader(), m.logger), m
}

func TestUninstall_Success(t *testing.T) {
	cli, m := setup(t)
	dir := t.TempDir()
	layout := domain.NewLayout(dir)
	pkg := domain.PackageID{Name: "fmt", Version: "10.0.0", Source: domain.SourceRegistry}
	set := domain.NewActivatedSet([]domain.ActivatedPackage{{PackageID: pkg}})

	m.manifests.EXPECT().Load(filepath.Join(dir, "poac.yml")).Return(m.manifest, nil)
	m.manifest.EXPECT().HasDeps().Return(true)
	m.manifest.EXPECT().Deps().Return([]domain.Dependency{
		{Key: "fmt", Name: "fmt", Source: domain.SourceRegistry, Constraint: "10.0.0"},
	})
	m.manifest.EXPECT().Fingerprint().Return("fp")
	m.locks.EXPECT().Load(layout.LockPath(), "fp").Return(&set, nil)
	m.logger.EXPECT().Info("fmt: 10.0.0")
	m.packages.EXPECT().Remove(filepath.Join(dir, "deps", "fmt-10.0.0")).Return(true, nil)
	m.manifest.EXPECT().Clone().Return(m.clone)
	m.clone.EXPECT().DropDeps()
	m.manifests.EXPECT().Save(layout.ManifestPath(), m.clone).Return(nil)
	m.locks.EXPECT().Remove(layout.LockPath()).Return(nil)
	m.logger.EXPECT().Success("fmt is deleted")

	cli.SetArgs([]string{"uninstall", "-C", dir, "-y", "fmt"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestUninstall_NoTargets(t *testing.T) {
	cli, _ := setup(t)
	var out bytes.Buffer
	cli.SetOut(&out)
	// Outside any project: the missing names are reported, not the missing manifest.
	cli.SetWorkingDir(t.TempDir())

	cli.SetArgs([]string{"uninstall"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidArguments)
	assert.Contains(t, out.String(), "uninstall [packages...]")
	assert.Contains(t, out.String(), "--all")
}

func TestUninstall_AllWithoutManifest(t *testing.T) {
	cli, m := setup(t)
	dir := t.TempDir()
	cli.SetWorkingDir(dir)

	m.packages.EXPECT().RemoveAll(filepath.Join(dir, "deps")).Return(nil)
	m.logger.EXPECT().Success(gomock.Any())

	cli.SetArgs([]string{"uninstall", "-a", "-y"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestUninstall_TargetsNeedManifest(t *testing.T) {
	cli, _ := setup(t)
	cli.SetWorkingDir(t.TempDir())

	cli.SetArgs([]string{"uninstall", "-y", "fmt"})
	err := cli.Execute(context.Background())
	require.ErrorContains(t, err, domain.ErrManifestNotFound.Error())
}

func TestUninstall_All(t *testing.T) {
	cli, m := setup(t)
	dir := t.TempDir()

	m.confirmer.EXPECT().Confirm(gomock.Any(), "Are you sure delete all packages?").Return(true, nil)
	m.packages.EXPECT().RemoveAll(filepath.Join(dir, "deps")).Return(nil)
	m.logger.EXPECT().Success(gomock.Any())

	cli.SetArgs([]string{"uninstall", "-C", dir, "--all"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestUninstall_AssumeYesFromEnv(t *testing.T) {
	cli, m := setup(t)
	dir := t.TempDir()
	t.Setenv(config.EnvAssumeYes, "true")

	m.packages.EXPECT().RemoveAll(filepath.Join(dir, "deps")).Return(nil)
	m.logger.EXPECT().Success(gomock.Any())

	cli.SetArgs([]string{"uninstall", "-C", dir, "-a"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestUninstall_InvalidSetting(t *testing.T) {
	cli, _ := setup(t)
	t.Setenv(config.EnvAssumeYes, "sometimes")

	cli.SetArgs([]string{"uninstall", "-C", t.TempDir(), "-a"})
	err := cli.Execute(context.Background())
	require.ErrorContains(t, err, domain.ErrInvalidSetting.Error())
}

func TestVersion(t *testing.T) {
	cli, _ := setup(t)
	var out bytes.Buffer
	cli.SetOut(&out)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "poac version dev\n", out.String())
}
