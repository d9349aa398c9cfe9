package checker

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Field is a scalar value whose key path matched one of the key patterns.
type Field struct {
	Key    string // Slash-separated key path, e.g. "server/0/read_timeout"
	Value  string
	Line   int
	Column int
}

// scanDocument decodes every YAML (or JSON) document in data and returns the
// scalar fields whose key path matches one of keys. Null values and aliases
// are skipped.
func scanDocument(data []byte, keys []string, ignoreCase bool) ([]Field, error) {
	if ignoreCase {
		normalized := make([]string, len(keys))
		for i, key := range keys {
			normalized[i] = strings.ToLower(key)
		}
		keys = normalized
	}

	var fields []Field
	var matchErr error

	visit := func(path []string, node *yaml.Node) {
		if matchErr != nil || node.Tag == "!!null" {
			return
		}

		key := strings.Join(path, "/")
		matchKey := key
		if ignoreCase {
			matchKey = strings.ToLower(matchKey)
		}

		for _, pattern := range keys {
			matched, err := doublestar.Match(pattern, matchKey)
			if err != nil {
				matchErr = fmt.Errorf("key pattern %q failed to match key %q: %w", pattern, key, err)
				return
			}
			if matched {
				fields = append(fields, Field{
					Key:    key,
					Value:  node.Value,
					Line:   node.Line,
					Column: node.Column,
				})
				return
			}
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		walk(&doc, nil, visit)
		if matchErr != nil {
			return nil, matchErr
		}
	}

	return fields, nil
}

func walk(node *yaml.Node, path []string, visit func([]string, *yaml.Node)) {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			walk(child, path, visit)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			walk(node.Content[i+1], append(path[:len(path):len(path)], key.Value), visit)
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			walk(child, append(path[:len(path):len(path)], strconv.Itoa(i)), visit)
		}
	case yaml.ScalarNode:
		if len(path) > 0 {
			visit(path, node)
		}
	}
}
