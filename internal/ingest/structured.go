package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ReadYAML reads either a sequence of strings or a Document
func ReadYAML(r io.Reader) (*Batch, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if err == io.EOF {
			return &Batch{Items: []string{}}, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := root.Decode(&items); err != nil {
			return nil, fmt.Errorf("decode yaml list: %w", err)
		}
		return &Batch{Items: trimItems(items)}, nil
	case yaml.MappingNode:
		var doc Document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml document: %w", err)
		}
		return &Batch{Items: trimItems(doc.items()), StoryNumber: doc.StoryNumber}, nil
	default:
		return nil, fmt.Errorf("decode yaml: expected a list or a mapping at line %d", root.Line)
	}
}

// ReadJSON reads either an array of strings or a Document
func ReadJSON(r io.Reader) (*Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &Batch{Items: []string{}}, nil
	}

	if data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decode json list: %w", err)
		}
		return &Batch{Items: trimItems(items)}, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode json document: %w", err)
	}
	return &Batch{Items: trimItems(doc.items()), StoryNumber: doc.StoryNumber}, nil
}
