// Package resolver locates, merges and removes values in a tree addressed by
// ambiguous dotted keys.
//
// Lang files may use literal dots inside a single key, so "a.b.c" can denote
// the key "a.b.c", the key "c" inside "a.b", or the chain a -> b -> c. Every
// operation in this package shares one matching rule:
//
//  1. The full key is tried as a literal key at the current level.
//  2. Otherwise the key is split on dots and the head is shortened one segment
//     at a time, longest first. The first head that names a subtree becomes the
//     new root and the remaining segments are resolved inside it.
//  3. When no head matches, the key is not found.
//
// Resolution never backtracks once it has descended into a subtree, which
// makes the longest matching ancestor win:
//
//	{"a.b": {"c": "x"}, "a": {"b": {"c": "y"}}}
//
// resolves "a.b.c" to "x".
package resolver
