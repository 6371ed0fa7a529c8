package skipfile

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingTopKey is returned for YAML without a top-level "testname" key.
var ErrMissingTopKey = errors.New("skip file has no " + TopKey + " key")

// Parse reads a skip file back into a Document. Exhaustion comments on list
// items are preserved; other comments are ignored.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding skip file: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrMissingTopKey
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("skip file root is not a mapping (line %d)", top.Line)
	}

	var body *yaml.Node
	for i := 0; i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value == TopKey {
			body = top.Content[i+1]
			break
		}
	}
	if body == nil {
		return nil, ErrMissingTopKey
	}

	doc := &Document{}
	if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
		return doc, nil
	}
	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s is not a mapping (line %d)", TopKey, body.Line)
	}

	for i := 0; i+1 < len(body.Content); i += 2 {
		key, val := body.Content[i], body.Content[i+1]
		cat := Category{Name: key.Value}
		switch {
		case val.Kind == yaml.SequenceNode:
			for _, item := range val.Content {
				if item.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("category %s: entry on line %d is not a test name", key.Value, item.Line)
				}
				cat.Entries = append(cat.Entries, Entry{
					Test:      item.Value,
					Exhausted: strings.Contains(item.LineComment, ExhaustedComment),
				})
			}
		case val.Kind == yaml.ScalarNode && val.Tag == "!!null":
		default:
			return nil, fmt.Errorf("category %s is not a list (line %d)", key.Value, val.Line)
		}
		doc.Categories = append(doc.Categories, cat)
	}
	return doc, nil
}

// Validate checks that data is YAML with the skip file's top-level key.
func Validate(data []byte) error {
	_, err := Parse(data)
	return err
}
