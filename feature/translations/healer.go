package translations

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"translations-manager/core/resolver"
	"translations-manager/core/storage"
	"translations-manager/core/tree"

	"go.uber.org/zap"
)

// Healer merges translated fix documents back into dependent locales and
// advances their lockfiles.
type Healer struct {
	store     storage.Store
	settings  *Settings
	lockfiles *Lockfiles
	logger    *zap.Logger

	mu    sync.Mutex
	paths map[string]*sync.Mutex
}

func NewHealer(store storage.Store, settings *Settings, lockfiles *Lockfiles, logger *zap.Logger) *Healer {
	return &Healer{
		store:     store,
		settings:  settings,
		lockfiles: lockfiles,
		logger:    logger,
		paths:     make(map[string]*sync.Mutex),
	}
}

type pendingFix struct {
	locale string
	name   string
	doc    *FixDocument
}

// Heal applies the fix file of locale.
func (h *Healer) Heal(locale string) error {
	return h.HealMany([]string{locale})
}

// HealMany applies the fix files of locales. Every fix file is checked first;
// if any check fails nothing is written.
func (h *Healer) HealMany(locales []string) error {
	fixes, err := h.validate(locales)
	if err != nil {
		return err
	}

	for _, fix := range fixes {
		for _, file := range fix.doc.Files {
			if err := h.healFile(fix.locale, file); err != nil {
				return err
			}
		}
		h.logger.Info("Healed locale",
			zap.String("locale", fix.locale),
			zap.String("fix_file", fix.name),
			zap.Int("files", len(fix.doc.Files)),
		)
	}
	return nil
}

func (h *Healer) validate(locales []string) ([]pendingFix, error) {
	if slices.Contains(locales, h.settings.Reference) {
		return nil, fmt.Errorf("%w: '%s'", ErrReferenceLocaleRequested, h.settings.Reference)
	}

	var unsupported []string
	for _, code := range locales {
		if !h.settings.IsSupported(code) {
			unsupported = append(unsupported, code)
		}
	}
	if len(unsupported) > 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedLocale, strings.Join(unsupported, "', '"))
	}

	dir := h.settings.Storage.FixedDir()
	names, err := h.fixedFiles(dir)
	if err != nil {
		return nil, err
	}

	var faults []error
	byLocale := make(map[string][]string)
	for _, name := range names {
		code, ok := ParseFixFileName(name, h.settings.Supported)
		if !ok {
			faults = append(faults, fmt.Errorf("%w: '%s'", ErrMisnamedFixFile, name))
			continue
		}
		if slices.Contains(locales, code) {
			byLocale[code] = append(byLocale[code], name)
		}
	}
	if len(faults) > 0 {
		return nil, errors.Join(faults...)
	}

	var missing []string
	for _, code := range locales {
		switch found := byLocale[code]; {
		case len(found) > 1:
			faults = append(faults, fmt.Errorf("%w: '%s' in '%s': '%s'", ErrDuplicateFixFile, code, dir, strings.Join(found, "', '")))
		case len(found) == 0:
			missing = append(missing, code)
		}
	}
	if len(faults) > 0 {
		return nil, errors.Join(faults...)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: no fix files in '%s' for '%s'", ErrMissingFixFile, dir, strings.Join(missing, "', '"))
	}

	fixes := make([]pendingFix, 0, len(locales))
	for _, code := range locales {
		name := byLocale[code][0]
		data, err := h.store.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		doc, err := DecodeFixDocument(data)
		if err != nil {
			faults = append(faults, fmt.Errorf("'%s': %w", name, err))
			continue
		}
		fileFaults, err := h.checkKeys(code, doc)
		if err != nil {
			return nil, err
		}
		faults = append(faults, fileFaults...)
		fixes = append(fixes, pendingFix{locale: code, name: name, doc: doc})
	}
	if len(faults) > 0 {
		return nil, errors.Join(faults...)
	}
	return fixes, nil
}

func (h *Healer) fixedFiles(dir string) ([]string, error) {
	names, err := h.store.Files(dir)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return slices.DeleteFunc(names, func(n string) bool { return strings.HasPrefix(n, ".") }), nil
}

// checkKeys verifies every staged key still resolves against the current reference tree.
func (h *Healer) checkKeys(locale string, doc *FixDocument) ([]error, error) {
	var faults []error
	for _, f := range doc.Files {
		refPath := h.settings.LangFilePath(h.settings.Reference, f.File)
		if !h.store.Exists(refPath) {
			faults = append(faults, fmt.Errorf("%w: '%s'", ErrUnknownReferenceFile, f.File))
			continue
		}
		reference, err := h.store.ReadTree(refPath)
		if err != nil {
			return nil, err
		}

		var unresolved []string
		for _, key := range f.Translations.Keys() {
			if _, ok := resolver.Locate(key, reference); !ok {
				unresolved = append(unresolved, key)
			}
		}
		if len(unresolved) > 0 {
			faults = append(faults, fmt.Errorf("%w: in '%s/%s': '%s'", ErrUnresolvableKey, locale, f.File, strings.Join(unresolved, "', '")))
		}
	}
	return faults, nil
}

func (h *Healer) healFile(locale string, file FixFile) error {
	unlock := h.lock(h.lockfiles.Path(file.File))
	defer unlock()

	reference, err := h.store.ReadTree(h.settings.LangFilePath(h.settings.Reference, file.File))
	if err != nil {
		return err
	}

	depPath := h.settings.LangFilePath(locale, file.File)
	dependent := tree.New()
	if h.store.Exists(depPath) {
		if dependent, err = h.store.ReadTree(depPath); err != nil {
			return err
		}
	}

	lock, err := h.lockfiles.Get(file.File)
	if err != nil {
		return err
	}

	for _, key := range file.Translations.Keys() {
		value, _ := file.Translations.Get(key)
		if err := resolver.Merge(key, value, dependent, lock, reference); err != nil {
			return fmt.Errorf("failed to heal '%s/%s': %w", locale, file.File, err)
		}
	}

	if err := h.store.WriteTree(depPath, dependent); err != nil {
		return err
	}
	if err := h.lockfiles.Set(file.File, lock); err != nil {
		return err
	}
	h.logger.Debug("Healed file",
		zap.String("locale", locale),
		zap.String("file", file.File),
		zap.Int("keys", file.Translations.Len()),
	)
	return nil
}

// lock serializes read-modify-write cycles on one lockfile path.
func (h *Healer) lock(path string) func() {
	h.mu.Lock()
	m, ok := h.paths[path]
	if !ok {
		m = &sync.Mutex{}
		h.paths[path] = m
	}
	h.mu.Unlock()

	m.Lock()
	return m.Unlock
}
