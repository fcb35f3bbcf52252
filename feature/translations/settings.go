package translations

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"translations-manager/core/storage"
)

// Settings is the validated configuration shared by every component.
type Settings struct {
	LangDir   string
	Format    string
	Reference string
	// Available holds every locale folder found in LangDir, sorted.
	Available []string
	// Supported holds the dependent locales, never including Reference.
	Supported   []string
	NameFormat  string
	Label       string
	Storage     storage.Config
	Parallelism int
}

// NewSettings validates the configuration against the lang directory.
// Every fault found is reported in the returned error.
func NewSettings(store storage.Store, lang LangConfig, fixes FixesConfig, st storage.Config, run RunConfig) (*Settings, error) {
	s := &Settings{
		LangDir:     lang.Dir,
		Format:      lang.Format,
		Reference:   lang.ReferenceLocale,
		NameFormat:  fixes.NameFormat,
		Label:       fixes.Label,
		Storage:     st,
		Parallelism: run.Parallelism,
	}
	if s.Parallelism <= 0 {
		s.Parallelism = 1
	}

	var faults []error

	if !lang.IsValidFormat() {
		faults = append(faults, fmt.Errorf("%w: got %q", ErrInvalidFormat, lang.Format))
	}
	if !fixes.IsValidNameFormat() {
		faults = append(faults, fmt.Errorf("%w: got %q", ErrInvalidNameFormat, fixes.NameFormat))
	}

	available, err := store.Dirs(lang.Dir)
	if err != nil {
		faults = append(faults, fmt.Errorf("%w: %s", ErrLangDirMissing, lang.Dir))
		return nil, errors.Join(faults...)
	}
	s.Available = available

	switch {
	case s.Reference == "":
		faults = append(faults, ErrReferenceLocaleUnset)
	case !slices.Contains(available, s.Reference):
		faults = append(faults, fmt.Errorf("%w: '%s'", ErrReferenceLocaleMissing, s.Reference))
	}

	supported := available
	if len(lang.SupportedLocales) > 0 {
		var missing []string
		for _, code := range lang.SupportedLocales {
			if !slices.Contains(available, code) {
				missing = append(missing, code)
			}
		}
		if len(missing) > 0 {
			faults = append(faults, fmt.Errorf("%w: '%s'", ErrSupportedLocaleMissing, strings.Join(missing, "', '")))
		}
		supported = lang.SupportedLocales
	}
	for _, code := range supported {
		if code != s.Reference && !slices.Contains(s.Supported, code) {
			s.Supported = append(s.Supported, code)
		}
	}

	if len(faults) > 0 {
		return nil, errors.Join(faults...)
	}
	return s, nil
}

// Extension returns the lang file extension, including the dot.
func (s *Settings) Extension() string {
	return LangConfig{Format: s.Format}.Extension()
}

// LangFilePath returns the path of the lang file identified by file in locale.
func (s *Settings) LangFilePath(locale, file string) string {
	return filepath.Join(s.LangDir, locale, filepath.FromSlash(file)+s.Extension())
}

// LocaleDir returns the folder of locale.
func (s *Settings) LocaleDir(locale string) string {
	return filepath.Join(s.LangDir, locale)
}

func (s *Settings) IsSupported(locale string) bool {
	return slices.Contains(s.Supported, locale)
}

func (s *Settings) IsAvailable(locale string) bool {
	return slices.Contains(s.Available, locale)
}
