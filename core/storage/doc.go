// Package storage provides structured tree storage on top of a filesystem.
//
// Lang files, lockfiles and fix documents are all read and written through the
// Store interface. FSStore implements it over an afero.Fs so the same code runs
// against the OS filesystem in production and an in-memory filesystem in tests.
//
// # Codecs
//
// The codec is picked from the file extension: .yaml and .yml files use the YAML
// codec, everything else is JSON. Both preserve key order.
//
// # Caching
//
// Parsed trees are kept in an LRU cache keyed by path and validated against the
// xxhash of the file content, so a changed file is always re-parsed. Writes whose
// content is byte-identical to the file on disk are skipped. Writes go through a
// temporary file followed by a rename.
//
// # Usage
//
//	store, err := storage.NewFSStore(afero.NewOsFs(), cfg.Storage, log)
//	t, err := store.ReadTree("lang/en/user.json")
//	err = store.WriteTree("lang/de/user.json", t)
package storage
