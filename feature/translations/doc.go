// Package translations keeps dependent locales consistent with a reference locale.
//
// It compares every lang file of every dependent locale against the reference
// locale and a lockfile, the last reference state known to be fully translated.
// Three sources are reconciled:
//  1. Reference: the authoritative lang files.
//  2. Dependent: the translated lang files of one locale.
//  3. Lockfile: one snapshot per lang file, shared by all locales.
//
// # Components
//
//   - Comparator: three way diff producing a Listing of typed errors.
//   - Manager: picks locales and lang files and runs the Comparator.
//   - Ignores: suppresses errors per locale, file or key.
//   - Generator: writes fix documents holding the values to translate.
//   - Healer: merges translated fix documents back and advances lockfiles.
//   - Cleaner: removes dead translations.
//
// # Error kinds
//
// translation_missing, file_not_translated, reference_file_missing and
// incorrect_translation_type are critical. no_reference_translation and
// reference_translation_updated are informational.
package translations
