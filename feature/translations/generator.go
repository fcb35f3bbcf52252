package translations

import (
	"fmt"
	"path/filepath"
	"strings"

	"translations-manager/core/resolver"
	"translations-manager/core/storage"
	"translations-manager/core/tree"
	"translations-manager/feature/translations/naming"

	"go.uber.org/zap"
)

// Generator extracts the values each locale needs translated into fix documents.
type Generator struct {
	store    storage.Store
	settings *Settings
	labeler  naming.Labeler
	logger   *zap.Logger
}

func NewGenerator(store storage.Store, settings *Settings, labeler naming.Labeler, logger *zap.Logger) *Generator {
	return &Generator{store: store, settings: settings, labeler: labeler, logger: logger}
}

// Generate builds one fix document per locale of listing. Untranslated files are
// staged whole; otherwise every non-dead error stages the reference value under
// its key. Files with nothing staged are left out. Ignored errors are skipped.
func (g *Generator) Generate(listing *Listing) ([]*FixDocument, error) {
	var missing []string
	for _, e := range listing.Errors(true) {
		if e.Kind == ReferenceFileMissing {
			missing = append(missing, e.Locale+"/"+e.File)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrReferenceFileMissing, strings.Join(missing, "', '"))
	}

	references := make(map[string]*tree.Tree)
	referenceOf := func(file string) (*tree.Tree, error) {
		if t, ok := references[file]; ok {
			return t, nil
		}
		t, err := g.store.ReadTree(g.settings.LangFilePath(listing.ReferenceLocale(), file))
		if err != nil {
			return nil, fmt.Errorf("failed to read reference file '%s': %w", file, err)
		}
		references[file] = t
		return t, nil
	}

	docs := make([]*FixDocument, 0, len(listing.Locales()))
	for _, loc := range listing.Locales() {
		doc := &FixDocument{Reference: listing.ReferenceLocale(), Locale: loc.Code(), Files: []FixFile{}}

		for _, file := range loc.Files() {
			errs := file.Errors(true)
			if len(errs) == 0 {
				continue
			}
			reference, err := referenceOf(file.Path())
			if err != nil {
				return nil, err
			}

			if hasKind(errs, FileNotTranslated) {
				doc.Files = append(doc.Files, FixFile{File: file.Path(), Translations: reference.Clone()})
				continue
			}

			staged := tree.New()
			for _, e := range errs {
				if e.Kind == NoReferenceTranslation {
					continue
				}
				if n, ok := resolver.Locate(e.Key, reference); ok {
					staged.Set(e.Key, tree.CloneNode(n))
				}
			}
			if !staged.Empty() {
				doc.Files = append(doc.Files, FixFile{File: file.Path(), Translations: staged})
			}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// WriteAll generates the fix documents of listing and writes them to the fixes
// directory. Nothing is written unless every document could be generated.
func (g *Generator) WriteAll(listing *Listing) ([]string, error) {
	docs, err := g.Generate(listing)
	if err != nil {
		return nil, err
	}

	label, err := g.labeler.Label()
	if err != nil {
		return nil, fmt.Errorf("failed to name fix files: %w", err)
	}

	encoded := make([][]byte, len(docs))
	for i, doc := range docs {
		if encoded[i], err = EncodeFixDocument(doc); err != nil {
			return nil, fmt.Errorf("failed to encode fixes for '%s': %w", doc.Locale, err)
		}
	}

	paths := make([]string, 0, len(docs))
	for i, doc := range docs {
		path := filepath.Join(g.settings.Storage.FixesDir(), FixFileName(doc.Locale, label))
		if err := g.store.WriteFile(path, encoded[i]); err != nil {
			return paths, err
		}
		g.logger.Info("Wrote fix file",
			zap.String("locale", doc.Locale),
			zap.String("path", path),
			zap.Int("files", len(doc.Files)),
		)
		paths = append(paths, path)
	}
	return paths, nil
}

func hasKind(errs []Error, kind Kind) bool {
	for _, e := range errs {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
