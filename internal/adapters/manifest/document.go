// Package manifest reads and edits poac.yml documents.
package manifest

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/poacpm/poac/internal/core/domain"
	"github.com/poacpm/poac/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Document implements ports.Manifest over a parsed YAML node tree.
// Only the deps section is ever edited; comments and other keys survive a round trip.
type Document struct {
	root *yaml.Node
}

// Parse decodes a manifest. An empty input yields an empty mapping.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		root.Kind = yaml.DocumentNode
		root.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}
	if len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrManifestParseFailed, "reason", "top level must be a mapping")
	}

	doc := &Document{root: &root}
	deps := doc.depsNode()
	if deps == nil || isNull(deps) {
		return doc, nil
	}
	if deps.Kind != yaml.MappingNode {
		return nil, zerr.With(domain.ErrManifestParseFailed, "reason", "deps must be a mapping")
	}
	for i := 0; i+1 < len(deps.Content); i += 2 {
		if _, err := decodeSpec(deps.Content[i+1]); err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "package", deps.Content[i].Value)
			return nil, zerr.With(err, "line", deps.Content[i+1].Line)
		}
	}
	return doc, nil
}

func decodeSpec(n *yaml.Node) (Spec, error) {
	var spec Spec
	err := n.Decode(&spec)
	return spec, err
}

func (d *Document) top() *yaml.Node {
	return d.root.Content[0]
}

// depsNode returns the value node of the deps key, or nil.
func (d *Document) depsNode() *yaml.Node {
	top := d.top()
	for i := 0; i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value == domain.DepsKey {
			return top.Content[i+1]
		}
	}
	return nil
}

// HasDeps reports whether the document has a deps section.
func (d *Document) HasDeps() bool {
	return d.depsNode() != nil
}

// Deps returns the declared dependencies in document order.
func (d *Document) Deps() []domain.Dependency {
	deps := d.depsNode()
	if deps == nil || deps.Kind != yaml.MappingNode {
		return nil
	}

	out := make([]domain.Dependency, 0, len(deps.Content)/2)
	for i := 0; i+1 < len(deps.Content); i += 2 {
		key := domain.NormalizeName(deps.Content[i].Value)
		source, name := domain.SplitManifestKey(key)

		// Values were validated by Parse.
		spec, _ := decodeSpec(deps.Content[i+1])

		out = append(out, domain.Dependency{
			Key:        key,
			Name:       name,
			Source:     source,
			Constraint: spec.Constraint,
		})
	}
	return out
}

// RemoveDep deletes a deps entry by its manifest key.
func (d *Document) RemoveDep(key string) bool {
	deps := d.depsNode()
	if deps == nil || deps.Kind != yaml.MappingNode {
		return false
	}

	key = domain.NormalizeName(key)
	for i := 0; i+1 < len(deps.Content); i += 2 {
		if domain.NormalizeName(deps.Content[i].Value) == key {
			deps.Content = slices.Delete(deps.Content, i, i+2)
			return true
		}
	}
	return false
}

// DropDeps removes the deps section entirely.
func (d *Document) DropDeps() {
	top := d.top()
	for i := 0; i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value == domain.DepsKey {
			top.Content = slices.Delete(top.Content, i, i+2)
			return
		}
	}
}

// Fingerprint returns an xxhash digest of the deps section.
// Keys are sorted so reordering entries does not change the result.
func (d *Document) Fingerprint() string {
	deps := d.Deps()
	slices.SortFunc(deps, func(a, b domain.Dependency) int {
		return strings.Compare(a.Key, b.Key)
	})

	h := xxhash.New()
	for _, dep := range deps {
		_, _ = h.WriteString(dep.Key)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(dep.Constraint)
		_, _ = h.WriteString("\n")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Clone returns an independent deep copy of the document.
func (d *Document) Clone() ports.Manifest {
	return &Document{root: cloneNode(d.root)}
}

// Marshal encodes the document with two-space indentation.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return buf.Bytes(), nil
}

func cloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Alias = cloneNode(n.Alias)
	if n.Content != nil {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = cloneNode(child)
		}
	}
	return &c
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
