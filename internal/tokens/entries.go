package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry is a single key/value pair in an Entries list.
type Entry[V any] struct {
	Key   string
	Value V
}

// Entries is an insertion-ordered mapping. Authored key order survives
// encoding, and duplicate keys are kept so validation can report them.
type Entries[V any] []Entry[V]

// Get returns the value of the first entry with the given key.
func (e Entries[V]) Get(key string) (V, bool) {
	for _, entry := range e {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	var zero V
	return zero, false
}

// Keys returns the keys in authored order.
func (e Entries[V]) Keys() []string {
	keys := make([]string, 0, len(e))
	for _, entry := range e {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Len returns the number of entries.
func (e Entries[V]) Len() int {
	return len(e)
}

// Clone returns a shallow copy of the list, or nil when it is empty.
// Values that are themselves reference types must be copied by the caller.
func (e Entries[V]) Clone() Entries[V] {
	if len(e) == 0 {
		return nil
	}
	out := make(Entries[V], len(e))
	copy(out, e)
	return out
}

// duplicates returns every key that appears more than once, in order of
// its second appearance.
func (e Entries[V]) duplicates() []string {
	seen := make(map[string]bool, len(e))
	var dups []string
	for _, entry := range e {
		if seen[entry.Key] {
			dups = append(dups, entry.Key)
			continue
		}
		seen[entry.Key] = true
	}
	return dups
}

// MarshalJSON encodes the entries as a JSON object in authored order.
func (e Entries[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", entry.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order and duplicates.
func (e *Entries[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		if tok == nil {
			*e = nil
			return nil
		}
		return fmt.Errorf("expected object, got %v", tok)
	}

	out := make(Entries[V], 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode %q: %w", key, err)
		}
		out = append(out, Entry[V]{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*e = out
	return nil
}

// MarshalYAML encodes the entries as a YAML mapping in authored order.
func (e Entries[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range e {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(entry.Value); err != nil {
			return nil, fmt.Errorf("encode %q: %w", entry.Key, err)
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, keeping key order and duplicates.
func (e *Entries[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*e = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping", node.Line)
	}

	out := make(Entries[V], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		var value V
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("decode %q: %w", keyNode.Value, err)
		}
		out = append(out, Entry[V]{Key: keyNode.Value, Value: value})
	}

	*e = out
	return nil
}
