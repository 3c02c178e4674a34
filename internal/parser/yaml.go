package parser

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"scaffold/internal/safety"
	"scaffold/internal/tree"
)

// ParseYAML reads the nested YAML form of a scaffold:
//
//	lib:
//	  - main.dart
//	  - controllers: []
//	    data:
//	      - models: []
//
// The document is a mapping with exactly one root key. Sequence items are
// either file names or mappings of folder name to contents. Mapping order is
// kept, so one item may declare several folders.
func ParseYAML(r io.Reader) (tree.Root, error) {
	dec := yaml.NewDecoder(r)
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return tree.Root{}, fmt.Errorf("no root found")
		}
		return tree.Root{}, fmt.Errorf("decode yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return tree.Root{}, fmt.Errorf("no root found")
	}

	// A single document only.
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return tree.Root{}, fmt.Errorf("decode yaml: %w", err)
		}
		return tree.Root{}, fmt.Errorf("line %d: expected a single yaml document", extra.Line)
	}

	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return tree.Root{}, fmt.Errorf("line %d: root must be a mapping", top.Line)
	}
	if len(top.Content) != 2 {
		return tree.Root{}, fmt.Errorf("line %d: expected exactly one root, got %d", top.Line, len(top.Content)/2)
	}

	name, err := nodeName(top.Content[0])
	if err != nil {
		return tree.Root{}, err
	}
	children, err := yamlContents(top.Content[1])
	if err != nil {
		return tree.Root{}, err
	}
	return tree.New(name, children...), nil
}

// yamlContents decodes the value of a folder: a sequence or null.
func yamlContents(n *yaml.Node) ([]tree.Node, error) {
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind != yaml.SequenceNode:
		return nil, fmt.Errorf("line %d: folder contents must be a list", n.Line)
	}

	var nodes []tree.Node
	for _, item := range n.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			name, err := nodeName(item)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, tree.File(name))

		case yaml.MappingNode:
			for i := 0; i+1 < len(item.Content); i += 2 {
				name, err := nodeName(item.Content[i])
				if err != nil {
					return nil, err
				}
				children, err := yamlContents(item.Content[i+1])
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, tree.Folder(name, children...))
			}

		default:
			return nil, fmt.Errorf("line %d: expected a file name or a folder mapping", item.Line)
		}
	}
	return nodes, nil
}

func nodeName(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || isNull(n) {
		return "", fmt.Errorf("line %d: expected a name", n.Line)
	}
	if err := safety.ValidateName(n.Value); err != nil {
		return "", fmt.Errorf("line %d: %w", n.Line, err)
	}
	return n.Value, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
