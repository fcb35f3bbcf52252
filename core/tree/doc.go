// Package tree provides the in-memory representation of a lang file.
//
// A Tree is an ordered mapping from string keys to Nodes. A Node is either a
// Leaf (a single string, or an ordered sequence of strings for multi-line
// values) or a nested *Tree. Key order is significant: it drives the order in
// which discrepancies are reported and the layout of every file written back
// to disk, so every codec in this package preserves it.
//
// # Codecs
//
//   - JSON: ParseJSON / EncodeJSON (pretty printed, slashes and unicode left
//     unescaped). JSON arrays of strings decode to multi-line leaves.
//   - YAML: ParseYAML / EncodeYAML, backed by gopkg.in/yaml.v3 nodes.
//
// # Usage
//
//	t, err := tree.ParseJSON(data)
//	if err != nil {
//	    return err
//	}
//	t.Set("greeting", tree.Text("Hello"))
//	out, err := tree.EncodeJSON(t)
package tree
