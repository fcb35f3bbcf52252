package translations

// Kind classifies a discrepancy between a dependent locale and the reference locale.
type Kind string

const (
	TranslationMissing          Kind = "translation_missing"
	FileNotTranslated           Kind = "file_not_translated"
	ReferenceFileMissing        Kind = "reference_file_missing"
	NoReferenceTranslation      Kind = "no_reference_translation"
	ReferenceTranslationUpdated Kind = "reference_translation_updated"
	IncorrectTranslationType    Kind = "incorrect_translation_type"
)

// FileErrorKey is the key of errors that concern a whole file.
const FileErrorKey = "FILE_ERROR"

// Critical reports whether errors of this kind fail validation.
func (k Kind) Critical() bool {
	switch k {
	case NoReferenceTranslation, ReferenceTranslationUpdated:
		return false
	default:
		return true
	}
}

// Error is a single discrepancy found in a lang file of a dependent locale.
type Error struct {
	Locale  string
	File    string
	Key     string
	Kind    Kind
	Ignored bool
}

// FullKey returns the key prefixed with the lang file identifier.
func (e Error) FullKey() string {
	return e.File + "." + e.Key
}

func (e Error) Critical() bool {
	return e.Kind.Critical()
}

// TranslationsFile holds the errors found in one lang file of one locale.
type TranslationsFile struct {
	path    string
	ignored bool
	errors  []Error
}

func NewTranslationsFile(path string, ignored bool) *TranslationsFile {
	return &TranslationsFile{path: path, ignored: ignored}
}

func (f *TranslationsFile) Path() string  { return f.path }
func (f *TranslationsFile) Ignored() bool { return f.ignored }

func (f *TranslationsFile) AddError(e Error) {
	f.errors = append(f.errors, e)
}

// Errors returns the file's errors. With useIgnores, ignored errors are
// dropped, and an ignored file yields none.
func (f *TranslationsFile) Errors(useIgnores bool) []Error {
	return f.filter(useIgnores, false)
}

// Critical is like Errors but keeps critical errors only.
func (f *TranslationsFile) Critical(useIgnores bool) []Error {
	return f.filter(useIgnores, true)
}

func (f *TranslationsFile) HasErrors(useIgnores bool) bool {
	return len(f.Errors(useIgnores)) > 0
}

func (f *TranslationsFile) filter(useIgnores, criticalOnly bool) []Error {
	if useIgnores && f.ignored {
		return nil
	}
	out := make([]Error, 0, len(f.errors))
	for _, e := range f.errors {
		if useIgnores && e.Ignored {
			continue
		}
		if criticalOnly && !e.Critical() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Locale holds the lang files of one dependent locale, in discovery order.
type Locale struct {
	code  string
	files []*TranslationsFile
	index map[string]int
}

func NewLocale(code string) *Locale {
	return &Locale{code: code, index: make(map[string]int)}
}

func (l *Locale) Code() string { return l.code }

func (l *Locale) Files() []*TranslationsFile {
	return append([]*TranslationsFile(nil), l.files...)
}

// File returns the file registered under path.
func (l *Locale) File(path string) (*TranslationsFile, bool) {
	i, ok := l.index[path]
	if !ok {
		return nil, false
	}
	return l.files[i], true
}

// AddFile registers f. A file already registered under the same path is replaced in place.
func (l *Locale) AddFile(f *TranslationsFile) {
	if i, ok := l.index[f.path]; ok {
		l.files[i] = f
		return
	}
	l.index[f.path] = len(l.files)
	l.files = append(l.files, f)
}

func (l *Locale) Errors(useIgnores bool) []Error {
	var out []Error
	for _, f := range l.files {
		out = append(out, f.Errors(useIgnores)...)
	}
	return out
}

func (l *Locale) Critical(useIgnores bool) []Error {
	var out []Error
	for _, f := range l.files {
		out = append(out, f.Critical(useIgnores)...)
	}
	return out
}

func (l *Locale) HasErrors(useIgnores bool) bool {
	for _, f := range l.files {
		if f.HasErrors(useIgnores) {
			return true
		}
	}
	return false
}

// Listing is the result of a comparison run: every checked locale with its files and errors.
type Listing struct {
	referenceLocale string
	locales         []*Locale
	index           map[string]int
}

func NewListing(referenceLocale string) *Listing {
	return &Listing{referenceLocale: referenceLocale, index: make(map[string]int)}
}

func (l *Listing) ReferenceLocale() string { return l.referenceLocale }

func (l *Listing) Locales() []*Locale {
	return append([]*Locale(nil), l.locales...)
}

func (l *Listing) Locale(code string) (*Locale, bool) {
	i, ok := l.index[code]
	if !ok {
		return nil, false
	}
	return l.locales[i], true
}

// AddLocale registers loc. A locale already registered under the same code is replaced in place.
func (l *Listing) AddLocale(loc *Locale) {
	if i, ok := l.index[loc.code]; ok {
		l.locales[i] = loc
		return
	}
	l.index[loc.code] = len(l.locales)
	l.locales = append(l.locales, loc)
}

// AddError appends e to its file, registering the locale and file when needed.
func (l *Listing) AddError(e Error) {
	loc, ok := l.Locale(e.Locale)
	if !ok {
		loc = NewLocale(e.Locale)
		l.AddLocale(loc)
	}
	f, ok := loc.File(e.File)
	if !ok {
		f = NewTranslationsFile(e.File, false)
		loc.AddFile(f)
	}
	f.AddError(e)
}

func (l *Listing) Errors(useIgnores bool) []Error {
	var out []Error
	for _, loc := range l.locales {
		out = append(out, loc.Errors(useIgnores)...)
	}
	return out
}

func (l *Listing) Critical(useIgnores bool) []Error {
	var out []Error
	for _, loc := range l.locales {
		out = append(out, loc.Critical(useIgnores)...)
	}
	return out
}

func (l *Listing) HasErrors(useIgnores bool) bool {
	for _, loc := range l.locales {
		if loc.HasErrors(useIgnores) {
			return true
		}
	}
	return false
}
