package tree

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML mapping into a Tree, preserving key order.
// An empty document yields an empty tree.
func ParseYAML(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Kind == 0 {
		return New(), nil
	}
	return decodeMapping(&doc, "")
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tree) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := decodeMapping(value, "")
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

func decodeMapping(n *yaml.Node, path string) (*Tree, error) {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return New(), nil
		}
		n = n.Content[0]
	}
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return nil, ErrNotObject
	}

	t := New()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		child, err := decodeNode(n.Content[i+1], join(path, key))
		if err != nil {
			return nil, err
		}
		t.Set(key, child)
	}
	return t, nil
}

func decodeNode(n *yaml.Node, path string) (Node, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, fmt.Errorf("%w: null at %q", ErrUnsupportedValue, path)
		}
		return Text(n.Value), nil
	case yaml.MappingNode:
		return decodeMapping(n, path)
	case yaml.SequenceNode:
		lines := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: non-string line at %q", ErrUnsupportedValue, path)
			}
			lines = append(lines, item.Value)
		}
		return Lines(lines...), nil
	default:
		return nil, fmt.Errorf("%w: at %q", ErrUnsupportedValue, path)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (t *Tree) MarshalYAML() (any, error) {
	return encodeMapping(t), nil
}

func encodeMapping(t *Tree) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range t.Keys() {
		n, _ := t.Get(k)
		m.Content = append(m.Content, strNode(k), encodeNode(n))
	}
	return m
}

func encodeNode(n Node) *yaml.Node {
	switch v := n.(type) {
	case *Tree:
		return encodeMapping(v)
	case Leaf:
		if !v.IsMultiline() {
			return strNode(v.Text())
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, line := range v.Lines() {
			seq.Content = append(seq.Content, strNode(line))
		}
		return seq
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// EncodeYAML encodes t as a YAML document with two space indentation.
func EncodeYAML(t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(encodeMapping(t)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
