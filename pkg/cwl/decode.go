// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

type (
	// Mapping is a decoded document mapping that remembers key order.
	// Descriptors declared as "id: record" mappings rely on that order to
	// keep unpositioned arguments in declaration order.
	Mapping struct {
		keys   []string
		values map[string]any
	}

	// RawDescriptor is an undecorated descriptor document: the decoded tree
	// before validation. Mappings are *Mapping, sequences are []any and
	// scalars are string, int, float64, bool or nil.
	RawDescriptor struct {
		// Source names the document in error messages (usually its file path).
		Source string
		// Document is the root mapping.
		Document *Mapping
	}
)

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]any)}
}

// Set adds or replaces key. New keys are appended to the key order.
func (m *Mapping) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in document order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Plain converts the mapping (recursively) into map[string]any.
func (m *Mapping) Plain() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = plain(m.values[k])
	}
	return out
}

func plain(v any) any {
	switch t := v.(type) {
	case *Mapping:
		return t.Plain()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}

// Decode parses a YAML or JSON descriptor document. Syntax errors and
// non-mapping documents are reported as *InvalidDescriptorError.
func Decode(data []byte, source string) (*RawDescriptor, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, newInvalidDescriptor(source, "", "cannot decode document: "+err.Error())
	}

	d := &nodeDecoder{budget: maxDecodedNodes}
	tree, err := d.fromNode(&root)
	if err != nil {
		return nil, newInvalidDescriptor(source, "", err.Error())
	}

	doc, ok := tree.(*Mapping)
	if !ok {
		return nil, newInvalidDescriptor(source, "", "document must be a mapping of descriptor fields")
	}

	return &RawDescriptor{Source: source, Document: doc}, nil
}

// FromMap builds a RawDescriptor from an in-memory tree. Go maps carry no
// order, so mapping keys are sorted; use a []any of records (or Decode) when
// declaration order matters.
func FromMap(source string, doc map[string]any) *RawDescriptor {
	m, _ := fromGo(doc).(*Mapping)
	return &RawDescriptor{Source: source, Document: m}
}

func fromGo(v any) any {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			m.Set(k, fromGo(t[k]))
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = fromGo(item)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = item
		}
		return out
	default:
		return v
	}
}

// maxDecodedNodes bounds the size of the decoded tree. Aliases are expanded
// in place, so a short document with nested anchors can otherwise describe
// an exponentially large tree.
const maxDecodedNodes = 100_000

// nodeDecoder converts a yaml.Node tree while counting expanded nodes.
type nodeDecoder struct {
	budget int
}

func (d *nodeDecoder) fromNode(n *yaml.Node) (any, error) {
	if n == nil || n.Kind == 0 {
		return nil, nil
	}

	d.budget--
	if d.budget < 0 {
		return nil, fmt.Errorf("document expands to more than %d nodes", maxDecodedNodes)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.fromNode(n.Content[0])
	case yaml.AliasNode:
		return d.fromNode(n.Alias)
	case yaml.MappingNode:
		m := NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			var key string
			if err := keyNode.Decode(&key); err != nil {
				return nil, fmt.Errorf("line %d: mapping key must be a string", keyNode.Line)
			}
			value, err := d.fromNode(valueNode)
			if err != nil {
				return nil, err
			}
			m.Set(key, value)
		}
		return m, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := d.fromNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

// MarshalYAML encodes the mapping with its keys in document order.
func (m *Mapping) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		var keyNode, valueNode yaml.Node
		if err := keyNode.Encode(k); err != nil {
			return nil, err
		}
		if err := valueNode.Encode(m.values[k]); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &keyNode, &valueNode)
	}
	return n, nil
}
