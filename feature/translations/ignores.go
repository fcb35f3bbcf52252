package translations

import (
	"errors"
	"fmt"
	"maps"
	"sync"

	"translations-manager/core/storage"

	"github.com/pelletier/go-toml/v2"
)

type ignoreEntry struct {
	whole bool
	keys  map[string]bool
}

// Ignores is the registry of suppressed errors: locale, then lang file, then
// either the whole file or a set of keys. It is written back after every change.
type Ignores struct {
	store   storage.Store
	path    string
	mu      sync.RWMutex
	entries map[string]map[string]*ignoreEntry
}

// LoadIgnores reads the registry at path. A missing file is an empty registry.
func LoadIgnores(store storage.Store, path string) (*Ignores, error) {
	i := &Ignores{store: store, path: path, entries: make(map[string]map[string]*ignoreEntry)}

	data, err := store.ReadFile(path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return i, nil
		}
		return nil, err
	}

	var doc map[string]map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse ignores file '%s': %w", path, err)
	}

	for locale, files := range doc {
		for file, v := range files {
			switch val := v.(type) {
			case bool:
				if val {
					i.entry(locale, file).whole = true
				}
			case map[string]any:
				for key, flag := range val {
					if b, ok := flag.(bool); ok && b {
						e := i.entry(locale, file)
						if e.keys == nil {
							e.keys = make(map[string]bool)
						}
						e.keys[key] = true
					}
				}
			default:
				return nil, fmt.Errorf("failed to parse ignores file '%s': unexpected value for %s/%s", path, locale, file)
			}
		}
	}
	return i, nil
}

func (i *Ignores) entry(locale, file string) *ignoreEntry {
	files, ok := i.entries[locale]
	if !ok {
		files = make(map[string]*ignoreEntry)
		i.entries[locale] = files
	}
	e, ok := files[file]
	if !ok {
		e = &ignoreEntry{}
		files[file] = e
	}
	return e
}

// IsIgnored reports whether errors of file, or of key within file, are suppressed
// for locale. An empty key asks about the whole file. A whole file ignore wins
// over key state.
func (i *Ignores) IsIgnored(locale, file, key string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.isIgnored(locale, file, key)
}

func (i *Ignores) isIgnored(locale, file, key string) bool {
	e, ok := i.entries[locale][file]
	if !ok {
		return false
	}
	if e.whole {
		return true
	}
	return key != "" && e.keys[key]
}

// Ignore suppresses errors of the whole file, or of key when it is not empty.
// Ignoring a whole file drops the key ignores it held.
func (i *Ignores) Ignore(locale, file, key string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.isIgnored(locale, file, key) {
		return nil
	}

	e := i.entry(locale, file)
	if key == "" {
		e.whole = true
		e.keys = nil
	} else {
		if e.keys == nil {
			e.keys = make(map[string]bool)
		}
		e.keys[key] = true
	}
	return i.save()
}

// Unignore lifts a whole file ignore, or a key ignore when key is not empty.
// Unignoring something that is not ignored is a no-op, as is unignoring a key
// of a wholly ignored file.
func (i *Ignores) Unignore(locale, file, key string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.isIgnored(locale, file, key) {
		return nil
	}

	files := i.entries[locale]
	e := files[file]
	if key == "" {
		delete(files, file)
	} else {
		if e.whole {
			return nil
		}
		delete(e.keys, key)
		if len(e.keys) == 0 {
			delete(files, file)
		}
	}
	if len(files) == 0 {
		delete(i.entries, locale)
	}
	return i.save()
}

// All returns the registry in its persisted shape: true for a whole file,
// otherwise a set of keys.
func (i *Ignores) All() map[string]map[string]any {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.document()
}

func (i *Ignores) document() map[string]map[string]any {
	doc := make(map[string]map[string]any, len(i.entries))
	for locale, files := range i.entries {
		out := make(map[string]any, len(files))
		for file, e := range files {
			if e.whole {
				out[file] = true
				continue
			}
			out[file] = maps.Clone(e.keys)
		}
		doc[locale] = out
	}
	return doc
}

func (i *Ignores) save() error {
	data, err := toml.Marshal(i.document())
	if err != nil {
		return fmt.Errorf("failed to encode ignores: %w", err)
	}
	if err := i.store.WriteFile(i.path, data); err != nil {
		return fmt.Errorf("failed to save ignores: %w", err)
	}
	return nil
}
