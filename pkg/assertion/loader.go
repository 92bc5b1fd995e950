package assertion

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// suite is the mapping form of a definitions document.
type suite struct {
	Assertions []Definition `yaml:"assertions"`
}

// LoadDefinitions reads definitions from a YAML or JSON file. See
// ParseDefinitions for the accepted layouts.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions %s: %w", path, err)
	}
	defs, err := ParseDefinitions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// ParseDefinitions decodes a document that is either a sequence
// of definitions or a mapping with an "assertions" sequence. An
// item may be a full mapping or a compact string understood by
// ParseAssertionString, in which case it has no target.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse definitions: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var defs []Definition
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&defs); err != nil {
			return nil, fmt.Errorf("parse definitions: %w", err)
		}
	case yaml.MappingNode:
		var s suite
		if err := root.Decode(&s); err != nil {
			return nil, fmt.Errorf("parse definitions: %w", err)
		}
		defs = s.Assertions
	default:
		return nil, fmt.Errorf("parse definitions: expected a sequence or a mapping, line %d", root.Line)
	}

	for i, d := range defs {
		if d.Type == "" {
			return nil, fmt.Errorf("definition %d: type is required", i)
		}
	}
	return defs, nil
}

// UnmarshalYAML accepts a mapping or a compact string.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*d = ParseAssertionString(node.Value)
		return nil
	}

	type plain Definition
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = Definition(p)
	return nil
}
