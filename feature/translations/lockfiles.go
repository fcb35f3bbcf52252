package translations

import (
	"fmt"
	"path/filepath"

	"translations-manager/core/storage"
	"translations-manager/core/tree"

	"go.uber.org/zap"
)

// Lockfiles gives access to the last reference state known to be fully translated,
// one tree per lang file, shared by every dependent locale.
type Lockfiles struct {
	store    storage.Store
	settings *Settings
	logger   *zap.Logger
}

func NewLockfiles(store storage.Store, settings *Settings, logger *zap.Logger) *Lockfiles {
	return &Lockfiles{store: store, settings: settings, logger: logger}
}

// Path returns the location of the lockfile of file.
func (l *Lockfiles) Path(file string) string {
	return filepath.Join(l.settings.Storage.LockDir(), filepath.FromSlash(file)+l.settings.Extension())
}

// Get returns the lockfile of file. A missing lockfile is created from the
// current reference tree first, so the first comparison never reports drift.
func (l *Lockfiles) Get(file string) (*tree.Tree, error) {
	if !l.store.Exists(l.Path(file)) {
		if err := l.Lock(file); err != nil {
			return nil, err
		}
	}
	t, err := l.store.ReadTree(l.Path(file))
	if err != nil {
		return nil, fmt.Errorf("failed to read lockfile of '%s': %w", file, err)
	}
	return t, nil
}

// Set replaces the lockfile of file with t.
func (l *Lockfiles) Set(file string, t *tree.Tree) error {
	if err := l.store.WriteTree(l.Path(file), t); err != nil {
		return fmt.Errorf("failed to write lockfile of '%s': %w", file, err)
	}
	return nil
}

// Lock snapshots the current reference tree of file into its lockfile.
func (l *Lockfiles) Lock(file string) error {
	reference, err := l.store.ReadTree(l.settings.LangFilePath(l.settings.Reference, file))
	if err != nil {
		return fmt.Errorf("failed to lock '%s': %w", file, err)
	}
	if err := l.Set(file, reference); err != nil {
		return err
	}
	l.logger.Debug("Locked lang file", zap.String("file", file), zap.String("path", l.Path(file)))
	return nil
}
