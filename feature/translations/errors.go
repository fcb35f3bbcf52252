package translations

import "go.trai.ch/zerr"

// Configuration faults.
var (
	ErrLangDirMissing         = zerr.New("lang directory does not exist")
	ErrInvalidFormat          = zerr.New("lang file format must be 'json' or 'yaml'")
	ErrReferenceLocaleUnset   = zerr.New("reference locale is not configured")
	ErrReferenceLocaleMissing = zerr.New("no folder for the reference locale")
	ErrSupportedLocaleMissing = zerr.New("no folder for supported locale")
	ErrInvalidNameFormat      = zerr.New("fix name format must be 'git' or 'date'")
)

// Locale selection faults.
var (
	ErrReferenceLocaleRequested = zerr.New("the reference locale cannot be used here")
	ErrUnknownLocale            = zerr.New("no locale folder for locale")
	ErrUnsupportedLocale        = zerr.New("locale is not supported")
	ErrAbsoluteFolder           = zerr.New("translations folders must be referenced by a relative path")
	ErrFolderMissing            = zerr.New("translations folder does not exist")
)

// Batch precondition faults for fix generation and healing.
var (
	ErrReferenceFileMissing = zerr.New("fix files requested for files missing from the reference locale")
	ErrMisnamedFixFile      = zerr.New("fix file is not named 'fixes-{locale}-{label}.json'")
	ErrDuplicateFixFile     = zerr.New("multiple fix files for locale")
	ErrMissingFixFile       = zerr.New("no fix file for locale")
	ErrMalformedFixFile     = zerr.New("fix file does not contain a well formed fix document")
	ErrUnknownReferenceFile = zerr.New("no such translations file in the reference locale")
	ErrUnresolvableKey      = zerr.New("keys could not be found in the reference locale")
)
