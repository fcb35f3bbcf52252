package translations

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"translations-manager/core/tree"
)

const (
	fixPrefix = "fixes-"
	fixExt    = ".json"
)

// FixDocument carries the values one locale needs (re)translated.
type FixDocument struct {
	Reference string    `json:"reference"`
	Locale    string    `json:"locale"`
	Files     []FixFile `json:"files"`
}

// FixFile holds the staged translations of one lang file. Keys are dotted
// paths stored literally at the top level of Translations.
type FixFile struct {
	File         string     `json:"file"`
	Translations *tree.Tree `json:"translations"`
}

// EncodeFixDocument renders doc as indented JSON without escaping slashes or unicode.
func EncodeFixDocument(doc *FixDocument) ([]byte, error) {
	if doc.Files == nil {
		doc.Files = []FixFile{}
	}
	return tree.EncodeJSON(doc)
}

// DecodeFixDocument parses a fix document.
func DecodeFixDocument(data []byte) (*FixDocument, error) {
	var doc FixDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFixFile, err)
	}
	for i, f := range doc.Files {
		if f.File == "" {
			return nil, fmt.Errorf("%w: entry %d has no file", ErrMalformedFixFile, i)
		}
		if f.Translations == nil {
			doc.Files[i].Translations = tree.New()
		}
	}
	return &doc, nil
}

// FixFileName returns the name of the fix file of locale.
func FixFileName(locale, label string) string {
	return fixPrefix + locale + "-" + label + fixExt
}

// ParseFixFileName extracts the locale from a fix file name. Known locales are
// tried longest first so codes containing dashes resolve; otherwise the locale
// ends at the first dash.
func ParseFixFileName(name string, known []string) (string, bool) {
	if !strings.HasPrefix(name, fixPrefix) || !strings.HasSuffix(name, fixExt) {
		return "", false
	}
	rest := strings.TrimSuffix(strings.TrimPrefix(name, fixPrefix), fixExt)

	candidates := slices.Clone(known)
	slices.SortFunc(candidates, func(a, b string) int { return len(b) - len(a) })
	for _, code := range candidates {
		if code != "" && strings.HasPrefix(rest, code+"-") && len(rest) > len(code)+1 {
			return code, true
		}
	}

	i := strings.Index(rest, "-")
	if i <= 0 || i == len(rest)-1 {
		return "", false
	}
	return rest[:i], true
}
