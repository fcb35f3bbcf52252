package tree

import (
	"slices"
	"strings"
)

// Node is a value held by a Tree. It is implemented only by Leaf and *Tree.
type Node interface {
	node()
}

// Leaf is a translated value. Multi-line values keep their lines separately.
type Leaf struct {
	text  string
	lines []string
	multi bool
}

func (Leaf) node() {}

// Text returns a single-string leaf.
func Text(s string) Leaf {
	return Leaf{text: s}
}

// Lines returns a multi-line leaf.
func Lines(lines ...string) Leaf {
	return Leaf{lines: slices.Clone(lines), multi: true}
}

// IsMultiline reports whether the leaf holds a sequence of strings.
func (l Leaf) IsMultiline() bool {
	return l.multi
}

// Text returns the single string value, or the lines joined by newlines.
func (l Leaf) Text() string {
	if !l.multi {
		return l.text
	}
	return strings.Join(l.lines, "\n")
}

// Lines returns a copy of the leaf's lines. A single-string leaf yields one line.
func (l Leaf) Lines() []string {
	if !l.multi {
		return []string{l.text}
	}
	return slices.Clone(l.lines)
}

// Equal reports whether two leaves hold the same shape and content.
func (l Leaf) Equal(o Leaf) bool {
	if l.multi != o.multi {
		return false
	}
	if !l.multi {
		return l.text == o.text
	}
	return slices.Equal(l.lines, o.lines)
}

// Tree is an ordered mapping of keys to nodes.
// The zero value is not usable; call New.
type Tree struct {
	keys  []string
	nodes map[string]Node
}

func (*Tree) node() {}

// New returns an empty tree.
func New() *Tree {
	return &Tree{nodes: make(map[string]Node)}
}

// Len returns the number of direct children.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Empty reports whether the tree has no children.
func (t *Tree) Empty() bool {
	return t.Len() == 0
}

// Keys returns the direct child keys in order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	return slices.Clone(t.keys)
}

// Has reports whether key is a direct child.
func (t *Tree) Has(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.nodes[key]
	return ok
}

// Get returns the direct child stored under key.
func (t *Tree) Get(key string) (Node, bool) {
	if t == nil {
		return nil, false
	}
	n, ok := t.nodes[key]
	return n, ok
}

// Subtree returns the child under key when it is a *Tree.
func (t *Tree) Subtree(key string) (*Tree, bool) {
	n, ok := t.Get(key)
	if !ok {
		return nil, false
	}
	sub, ok := n.(*Tree)
	return sub, ok
}

// Leaf returns the child under key when it is a Leaf.
func (t *Tree) Leaf(key string) (Leaf, bool) {
	n, ok := t.Get(key)
	if !ok {
		return Leaf{}, false
	}
	l, ok := n.(Leaf)
	return l, ok
}

// Set stores n under key. A new key is appended; an existing key keeps its position.
// Setting a nil *Tree stores an empty tree.
func (t *Tree) Set(key string, n Node) {
	if sub, ok := n.(*Tree); ok && sub == nil {
		n = New()
	}
	if _, exists := t.nodes[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.nodes[key] = n
}

// Delete removes key and reports whether it was present.
func (t *Tree) Delete(key string) bool {
	if !t.Has(key) {
		return false
	}
	delete(t.nodes, key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })
	return true
}

// Clone returns a deep copy.
func (t *Tree) Clone() *Tree {
	out := New()
	if t == nil {
		return out
	}
	for _, k := range t.keys {
		out.Set(k, CloneNode(t.nodes[k]))
	}
	return out
}

// CloneNode returns a deep copy of n.
func CloneNode(n Node) Node {
	switch v := n.(type) {
	case Leaf:
		if v.multi {
			return Lines(v.lines...)
		}
		return v
	case *Tree:
		return v.Clone()
	default:
		return n
	}
}

// Equal reports whether both trees hold the same keys, in the same order, with equal nodes.
func (t *Tree) Equal(o *Tree) bool {
	if t.Len() != o.Len() {
		return false
	}
	for i, k := range t.Keys() {
		if o.keys[i] != k {
			return false
		}
		if !NodesEqual(t.nodes[k], o.nodes[k]) {
			return false
		}
	}
	return true
}

// NodesEqual compares two nodes of any kind.
func NodesEqual(a, b Node) bool {
	switch x := a.(type) {
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x.Equal(y)
	case *Tree:
		y, ok := b.(*Tree)
		return ok && x.Equal(y)
	default:
		return a == nil && b == nil
	}
}
