package translations

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"translations-manager/core/storage"
)

// Files discovers lang files inside locale folders.
type Files struct {
	store    storage.Store
	settings *Settings
}

func NewFiles(store storage.Store, settings *Settings) *Files {
	return &Files{store: store, settings: settings}
}

// ListLocale returns the identifiers of every lang file of locale, optionally limited
// to a relative subfolder. Identifiers use forward slashes and drop the extension.
func (f *Files) ListLocale(locale, subfolder string) ([]string, error) {
	subfolder = filepath.ToSlash(subfolder)
	if strings.HasPrefix(subfolder, "/") || filepath.IsAbs(subfolder) {
		return nil, fmt.Errorf("%w: '%s'", ErrAbsoluteFolder, subfolder)
	}
	subfolder = strings.Trim(subfolder, "/")

	root := f.settings.LocaleDir(locale)
	if !f.store.Exists(root) {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownLocale, locale)
	}

	dir := root
	if subfolder != "" {
		dir = filepath.Join(root, filepath.FromSlash(subfolder))
		if !f.store.Exists(dir) {
			return nil, fmt.Errorf("%w: '%s'", ErrFolderMissing, subfolder)
		}
	}

	walked, err := f.store.Walk(dir)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrFolderMissing, subfolder)
		}
		return nil, err
	}

	ext := f.settings.Extension()
	ids := make([]string, 0, len(walked))
	for _, rel := range walked {
		if !strings.HasSuffix(rel, ext) || strings.HasPrefix(path.Base(rel), ".") {
			continue
		}
		id := strings.TrimSuffix(rel, ext)
		if subfolder != "" {
			id = subfolder + "/" + id
		}
		ids = append(ids, id)
	}
	return ids, nil
}
