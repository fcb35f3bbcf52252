package translations

import (
	"context"
	"errors"
	"fmt"

	"translations-manager/core/storage"
	"translations-manager/core/tree"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Finding is a discrepancy found by Compare, keyed by its dotted path within the file.
type Finding struct {
	Key  string
	Kind Kind
}

// Compare diffs dependent and lock against reference. For every level it reports
// reference keys first (missing, wrong type, drift), then dependent keys with no
// reference counterpart, then descends into reference subtrees in reference order.
// A missing key is never also reported as drift.
func Compare(reference, dependent, lock *tree.Tree) []Finding {
	var out []Finding
	compareLevel(reference, dependent, lock, "", &out)
	return out
}

func compareLevel(reference, dependent, lock *tree.Tree, path string, out *[]Finding) {
	for _, k := range reference.Keys() {
		refNode, _ := reference.Get(k)
		depNode, ok := dependent.Get(k)
		if !ok {
			*out = append(*out, Finding{Key: join(path, k), Kind: TranslationMissing})
			continue
		}

		refLeaf, isLeaf := refNode.(tree.Leaf)
		if !isLeaf {
			continue
		}
		switch depNode.(type) {
		case *tree.Tree:
			*out = append(*out, Finding{Key: join(path, k), Kind: IncorrectTranslationType})
		case tree.Leaf:
			if locked, ok := lock.Get(k); ok && !tree.NodesEqual(refLeaf, locked) {
				*out = append(*out, Finding{Key: join(path, k), Kind: ReferenceTranslationUpdated})
			}
		}
	}

	for _, k := range dependent.Keys() {
		if !reference.Has(k) {
			*out = append(*out, Finding{Key: join(path, k), Kind: NoReferenceTranslation})
		}
	}

	for _, k := range reference.Keys() {
		refSub, ok := reference.Subtree(k)
		if !ok {
			continue
		}
		depNode, ok := dependent.Get(k)
		if !ok {
			continue
		}
		switch dep := depNode.(type) {
		case tree.Leaf:
			*out = append(*out, Finding{Key: join(path, k), Kind: IncorrectTranslationType})
		case *tree.Tree:
			lockSub, _ := lock.Subtree(k)
			compareLevel(refSub, dep, lockSub, join(path, k), out)
		}
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// Comparator validates dependent locales against the reference locale on disk.
type Comparator struct {
	store     storage.Store
	settings  *Settings
	lockfiles *Lockfiles
	ignores   *Ignores
	logger    *zap.Logger
}

func NewComparator(store storage.Store, settings *Settings, lockfiles *Lockfiles, ignores *Ignores, logger *zap.Logger) *Comparator {
	return &Comparator{store: store, settings: settings, lockfiles: lockfiles, ignores: ignores, logger: logger}
}

type referenceFile struct {
	tree    *tree.Tree
	lock    *tree.Tree
	invalid bool
	needed  bool
}

// Validate compares every file of every locale against reference and returns
// the resulting listing. Locales and files keep the given order.
func (c *Comparator) Validate(ctx context.Context, reference string, files, locales []string) (*Listing, error) {
	prepared, err := c.prepare(reference, files, locales)
	if err != nil {
		return nil, err
	}

	results := make([]*Locale, len(locales))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, c.settings.Parallelism))
	for i, code := range locales {
		g.Go(func() error {
			loc, err := c.validateLocale(ctx, code, files, prepared)
			if err != nil {
				return err
			}
			results[i] = loc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	listing := NewListing(reference)
	for _, loc := range results {
		listing.AddLocale(loc)
	}
	c.logger.Debug("Validation finished",
		zap.Int("locales", len(locales)),
		zap.Int("files", len(files)),
		zap.Int("errors", len(listing.Errors(false))),
	)
	return listing, nil
}

// prepare loads reference trees and lockfiles once, before the per locale fan out.
// Lockfiles are created here, sequentially, for files some locale translates.
func (c *Comparator) prepare(reference string, files, locales []string) ([]referenceFile, error) {
	prepared := make([]referenceFile, len(files))
	for i, file := range files {
		for _, code := range locales {
			if c.store.Exists(c.settings.LangFilePath(code, file)) {
				prepared[i].needed = true
				break
			}
		}
		if !prepared[i].needed {
			continue
		}

		ref, err := c.store.ReadTree(c.settings.LangFilePath(reference, file))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrDecodeFailed) {
				c.logger.Warn("Reference file is not usable", zap.String("file", file), zap.Error(err))
				prepared[i].invalid = true
				continue
			}
			return nil, err
		}

		lock, err := c.lockfiles.Get(file)
		if err != nil {
			return nil, err
		}
		prepared[i].tree = ref
		prepared[i].lock = lock
	}
	return prepared, nil
}

func (c *Comparator) validateLocale(ctx context.Context, code string, files []string, prepared []referenceFile) (*Locale, error) {
	loc := NewLocale(code)
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file := NewTranslationsFile(path, c.ignores.IsIgnored(code, path, ""))
		loc.AddFile(file)

		depPath := c.settings.LangFilePath(code, path)
		if !c.store.Exists(depPath) {
			file.AddError(c.newError(code, path, FileErrorKey, FileNotTranslated))
			continue
		}
		if prepared[i].invalid {
			file.AddError(c.newError(code, path, FileErrorKey, ReferenceFileMissing))
			continue
		}

		dependent, err := c.store.ReadTree(depPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read '%s/%s': %w", code, path, err)
		}

		for _, f := range Compare(prepared[i].tree, dependent, prepared[i].lock) {
			file.AddError(c.newError(code, path, f.Key, f.Kind))
		}
	}
	return loc, nil
}

func (c *Comparator) newError(locale, file, key string, kind Kind) Error {
	ignoreKey := key
	if key == FileErrorKey {
		ignoreKey = ""
	}
	return Error{
		Locale:  locale,
		File:    file,
		Key:     key,
		Kind:    kind,
		Ignored: c.ignores.IsIgnored(locale, file, ignoreKey),
	}
}
