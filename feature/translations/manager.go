package translations

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Manager answers status questions about dependent locales.
type Manager struct {
	settings   *Settings
	files      *Files
	comparator *Comparator
	logger     *zap.Logger
}

func NewManager(settings *Settings, files *Files, comparator *Comparator, logger *zap.Logger) *Manager {
	return &Manager{settings: settings, files: files, comparator: comparator, logger: logger}
}

// Listing compares locales against the reference locale. No locales means every supported locale.
func (m *Manager) Listing(ctx context.Context, locales []string) (*Listing, error) {
	locales, err := m.locales(locales)
	if err != nil {
		return nil, err
	}

	files, err := m.files.ListLocale(m.settings.Reference, "")
	if err != nil {
		return nil, err
	}

	m.logger.Debug("Comparing locales",
		zap.String("reference", m.settings.Reference),
		zap.Strings("locales", locales),
		zap.Int("files", len(files)),
	)
	return m.comparator.Validate(ctx, m.settings.Reference, files, locales)
}

// Errors lists every error in locales.
func (m *Manager) Errors(ctx context.Context, locales []string, useIgnores bool) ([]Error, error) {
	listing, err := m.Listing(ctx, locales)
	if err != nil {
		return nil, err
	}
	return listing.Errors(useIgnores), nil
}

// HasErrors reports whether locales have any error.
func (m *Manager) HasErrors(ctx context.Context, locales []string, useIgnores bool) (bool, error) {
	listing, err := m.Listing(ctx, locales)
	if err != nil {
		return false, err
	}
	return listing.HasErrors(useIgnores), nil
}

func (m *Manager) locales(locales []string) ([]string, error) {
	if len(locales) == 0 {
		return slices.Clone(m.settings.Supported), nil
	}

	if slices.Contains(locales, m.settings.Reference) {
		return nil, fmt.Errorf("%w: '%s'", ErrReferenceLocaleRequested, m.settings.Reference)
	}

	var missing []string
	for _, code := range locales {
		if !m.settings.IsAvailable(code) {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownLocale, strings.Join(missing, "', '"))
	}
	return locales, nil
}

// DisplayName returns the English name of a locale code, or the code itself
// when it is not a valid language tag.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return code
	}
	return name
}
