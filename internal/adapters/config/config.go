// Package config resolves the settings of a poac invocation from flags, the environment and .env files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/poacpm/poac/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables read by Load.
const (
	EnvProjectDir = "POAC_PROJECT_DIR"
	EnvLogFormat  = "POAC_LOG_FORMAT"
	EnvAssumeYes  = "POAC_ASSUME_YES"
)

// DotEnvFile is loaded from the working directory when present.
const DotEnvFile = ".env"

// Flags are the values given on the command line. Zero values mean "not set".
type Flags struct {
	ProjectDir string
	JSON       bool
	Yes        bool
	// ManifestOptional roots the project at the working directory when no poac.yml is found.
	ManifestOptional bool
}

// Settings are the resolved settings of one invocation.
type Settings struct {
	// Layout locates the project files.
	Layout domain.Layout
	// JSONLog switches the logger to JSON output.
	JSONLog bool
	// AssumeYes skips interactive confirmation.
	AssumeYes bool
}

// Loader resolves Settings.
type Loader struct {
	getenv func(string) string
}

// NewLoader creates a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{getenv: os.Getenv}
}

// LoadDotEnv loads .env from dir into the process environment.
// Variables that are already set are kept; a missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, DotEnvFile)
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to load .env"), "path", path)
	}
	return nil
}

// Load resolves settings for a command started in cwd. Flags win over the environment.
// Without an explicit project directory, the project root is found by walking
// up from cwd to the nearest poac.yml.
func (l *Loader) Load(cwd string, flags Flags) (Settings, error) {
	var s Settings

	s.JSONLog = flags.JSON || strings.EqualFold(strings.TrimSpace(l.getenv(EnvLogFormat)), "json")

	s.AssumeYes = flags.Yes
	if !s.AssumeYes {
		yes, err := parseBool(EnvAssumeYes, l.getenv(EnvAssumeYes))
		if err != nil {
			return Settings{}, err
		}
		s.AssumeYes = yes
	}

	dir := flags.ProjectDir
	if dir == "" {
		dir = strings.TrimSpace(l.getenv(EnvProjectDir))
	}
	if dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cwd, dir)
		}
		s.Layout = domain.NewLayout(dir)
		return s, nil
	}

	root, err := DiscoverRoot(cwd)
	if err != nil {
		if !flags.ManifestOptional {
			return Settings{}, err
		}
		root = cwd
	}
	s.Layout = domain.NewLayout(root)
	return s, nil
}

func parseBool(key, raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrInvalidSetting.Error()), "variable", key)
		return false, zerr.With(err, "value", raw)
	}
	return v, nil
}

// DiscoverRoot walks up from start to the nearest directory containing poac.yml.
func DiscoverRoot(start string) (string, error) {
	current := filepath.Clean(start)
	for {
		if _, err := os.Stat(filepath.Join(current, domain.ManifestFileName)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", zerr.With(domain.ErrManifestNotFound, "cwd", start)
		}
		current = parent
	}
}
