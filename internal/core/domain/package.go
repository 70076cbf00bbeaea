package domain

import (
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/text/unicode/norm"
)

// Source identifies where a package is provisioned from.
type Source string

const (
	// SourceRegistry is the poac package registry.
	SourceRegistry Source = "poac"
	// SourceGitHub is a package hosted in a GitHub repository.
	SourceGitHub Source = "github"
)

// githubKeyPrefix namespaces GitHub dependencies in the manifest deps section.
const githubKeyPrefix = "github/"

// ParseSource converts a serialized source into a Source.
// An empty string is treated as the registry.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case "", SourceRegistry:
		return SourceRegistry, nil
	case SourceGitHub:
		return SourceGitHub, nil
	default:
		return "", zerr.With(ErrInvalidSource, "source", s)
	}
}

// ManifestKey returns the key under which a package of this source is declared in the manifest.
func (s Source) ManifestKey(name string) string {
	if s == SourceGitHub {
		return githubKeyPrefix + name
	}
	return name
}

// SplitManifestKey splits a manifest deps key into its source and package name.
func SplitManifestKey(key string) (Source, string) {
	if name, ok := strings.CutPrefix(key, githubKeyPrefix); ok {
		return SourceGitHub, NormalizeName(name)
	}
	return SourceRegistry, NormalizeName(key)
}

// NormalizeName puts a package name in the canonical form used for matching.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// PackageID names a concrete package: its name, resolved version and provenance.
type PackageID struct {
	Name    string
	Version string
	Source  Source
}

// String renders the identity the way it is shown to users.
func (p PackageID) String() string {
	return p.Name + ": " + p.Version
}

// Locked returns the name-less view of the identity stored in a Backtracked map.
func (p PackageID) Locked() Locked {
	return Locked{Version: p.Version, Source: p.Source}
}

// InstallDirName returns the directory name of an installed package under the deps directory.
func InstallDirName(id PackageID) string {
	base := strings.ReplaceAll(id.Name, "/", "-") + "-" + id.Version
	if id.Source == SourceGitHub {
		return string(SourceGitHub) + "-" + base
	}
	return base
}
