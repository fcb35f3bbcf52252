package resolver

import (
	"fmt"
	"strings"

	"translations-manager/core/tree"

	"go.trai.ch/zerr"
)

// ErrNotFound is returned when a key cannot be matched in the reference tree.
var ErrNotFound = zerr.New("key not found")

// Locate returns the node denoted by key in t.
func Locate(key string, t *tree.Tree) (tree.Node, bool) {
	if n, ok := t.Get(key); ok {
		return n, true
	}

	head, rest, ok := descend(key, t)
	if !ok {
		return nil, false
	}
	sub, _ := t.Subtree(head)
	return Locate(rest, sub)
}

// Merge writes value at the position key denotes in reference, creating
// intermediate subtrees in into and lock as needed. The lock receives a copy
// of the reference node at the same position, so it records the reference
// state the new translation corresponds to.
func Merge(key string, value tree.Node, into, lock, reference *tree.Tree) error {
	if _, ok := Locate(key, reference); !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	merge(key, value, into, lock, reference)
	return nil
}

func merge(key string, value tree.Node, into, lock, reference *tree.Tree) {
	if ref, ok := reference.Get(key); ok {
		into.Set(key, tree.CloneNode(value))
		lock.Set(key, tree.CloneNode(ref))
		return
	}

	head, rest, _ := descend(key, reference)
	refSub, _ := reference.Subtree(head)
	merge(rest, value, ensureSubtree(into, head), ensureSubtree(lock, head), refSub)
}

// Remove deletes the node key denotes in from and prunes ancestors that were
// left empty by the removal. It reports whether anything was removed.
func Remove(key string, from *tree.Tree) bool {
	if from.Delete(key) {
		return true
	}

	head, rest, ok := descend(key, from)
	if !ok {
		return false
	}
	sub, _ := from.Subtree(head)
	removed := Remove(rest, sub)
	if removed && sub.Empty() {
		from.Delete(head)
	}
	return removed
}

// descend finds the longest dotted head of key naming a subtree of t.
func descend(key string, t *tree.Tree) (head, rest string, ok bool) {
	parts := strings.Split(key, ".")
	for i := len(parts) - 1; i >= 1; i-- {
		candidate := strings.Join(parts[:i], ".")
		if _, isTree := t.Subtree(candidate); isTree {
			return candidate, strings.Join(parts[i:], "."), true
		}
	}
	return "", "", false
}

// ensureSubtree returns the subtree under key, replacing a missing or leaf node with an empty tree.
func ensureSubtree(t *tree.Tree, key string) *tree.Tree {
	if sub, ok := t.Subtree(key); ok {
		return sub
	}
	sub := tree.New()
	t.Set(key, sub)
	return sub
}
