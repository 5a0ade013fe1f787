// Package keywords loads and serves the keyword table behind the hint panel.
package keywords

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/codehint/internal/hint"
	"github.com/zjrosen/codehint/internal/log"
)

//go:embed defaults.yaml
var builtinYAML []byte

// ErrNoName is returned for table entries without a name.
var ErrNoName = errors.New("keyword entry has no name")

// entryNode decodes either the tuple form
//
//	[name, signature, [params...], description]
//
// or the mapping form with name/signature/parameters/description keys.
type entryNode struct {
	hint.KeywordEntry
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *entryNode) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		return value.Decode(&e.KeywordEntry)
	case yaml.SequenceNode:
		return e.decodeTuple(value.Content)
	default:
		return fmt.Errorf("line %d: keyword entry must be a list or a mapping", value.Line)
	}
}

func (e *entryNode) decodeTuple(items []*yaml.Node) error {
	if len(items) > 4 {
		return fmt.Errorf("line %d: keyword tuple has %d elements, want at most 4", items[0].Line, len(items))
	}
	targets := []any{&e.Name, &e.Signature, &e.Parameters, &e.Description}
	for i, item := range items {
		if item.Kind == yaml.ScalarNode && item.Tag == "!!null" {
			continue
		}
		if err := item.Decode(targets[i]); err != nil {
			return fmt.Errorf("line %d: element %d: %w", item.Line, i, err)
		}
	}
	return nil
}

// tableFile is the mapping form of a keyword file: {keywords: [...]}.
type tableFile struct {
	Keywords []entryNode `yaml:"keywords"`
}

// Parse decodes a keyword table from YAML (JSON documents parse as well).
// The document is either a list of entries or a mapping with a "keywords"
// list.
func Parse(data []byte) ([]hint.KeywordEntry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing keyword table: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	var nodes []entryNode
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("decoding keyword list: %w", err)
		}
	case yaml.MappingNode:
		var tf tableFile
		if err := root.Decode(&tf); err != nil {
			return nil, fmt.Errorf("decoding keyword table: %w", err)
		}
		nodes = tf.Keywords
	default:
		return nil, fmt.Errorf("keyword table must be a list or a mapping with a keywords key")
	}

	entries := make([]hint.KeywordEntry, 0, len(nodes))
	for i, n := range nodes {
		if n.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrNoName)
		}
		entries = append(entries, n.KeywordEntry)
	}
	return entries, nil
}

// LoadFile reads and parses a keyword table file.
func LoadFile(path string) ([]hint.KeywordEntry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("reading keyword table: %w", err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Info(log.CatKeywords, "loaded keyword table", "path", path, "entries", len(entries))
	return entries, nil
}

// Builtin returns the embedded default keyword table.
func Builtin() []hint.KeywordEntry {
	entries, err := Parse(builtinYAML)
	if err != nil {
		log.ErrorErr(log.CatKeywords, "built-in keyword table is invalid", err)
		return nil
	}
	return entries
}

// Load assembles the keyword table from an optional file and the built-in
// entries. File entries come first, so they win under prefix matching.
// An empty path with builtin disabled yields an empty table.
func Load(path string, builtin bool) ([]hint.KeywordEntry, error) {
	var entries []hint.KeywordEntry
	if path != "" {
		fromFile, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fromFile...)
	}
	if builtin {
		entries = append(entries, Builtin()...)
	}
	return entries, nil
}
