package manifest

import (
	"github.com/poacpm/poac/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Spec is the value of a deps entry. It accepts either a scalar constraint
// ("boost/config: >=1.70.0") or a mapping with a tag or version
// ("github/owner/repo: {tag: v1.0.0}").
type Spec struct {
	Constraint string
}

type specDTO struct {
	Tag     string `yaml:"tag"`
	Version string `yaml:"version"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.Constraint = node.Value
		return nil
	case yaml.MappingNode:
		var dto specDTO
		if err := node.Decode(&dto); err != nil {
			return err
		}
		s.Constraint = dto.Tag
		if s.Constraint == "" {
			s.Constraint = dto.Version
		}
		return nil
	default:
		return zerr.With(domain.ErrManifestParseFailed, "line", node.Line)
	}
}

// PackageFile is the manifest shipped inside an installed package directory.
type PackageFile struct {
	Name    string          `yaml:"name"`
	Version string          `yaml:"version"`
	Source  string          `yaml:"source"`
	Deps    map[string]Spec `yaml:"deps"`
}
