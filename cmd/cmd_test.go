package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"translations-manager/core/tree"
	"translations-manager/feature/translations"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(t *testing.T) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"translations.yaml": "fixes:\n  label: test\nlog:\n  level: error\n",
		"lang/en/auth.json": `{"failed": "Failed"}`,
		"lang/en/user.json": `{"name": "Name", "profile": {"bio": "Bio"}}`,
		"lang/de/auth.json": `{"failed": "Fehlgeschlagen"}`,
		"lang/es/auth.json": `{"failed": "Fallido"}`,
		"lang/es/user.json": `{"name": "Nombre", "profile": {"bio": "Bio"}, "legacy": "Viejo"}`,
	})
	return dir
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readTree(t *testing.T, path string) *tree.Tree {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	tr, err := tree.ParseJSON(data)
	require.NoError(t, err)
	return tr
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(append(args, "--dir", dir))

	err := RootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestValidate(t *testing.T) {
	dir := newProject(t)

	out, err := run(t, dir, "", "validate")

	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, out, "de/user")
	assert.Contains(t, out, "file not translated")
	assert.Contains(t, out, "Validation failed")
	assert.NotContains(t, out, "legacy")

	out, err = run(t, dir, "", "validate", "es")
	require.NoError(t, err)
	assert.Contains(t, out, "1 informational error(s)")
	assert.Contains(t, out, "Validation passed")
}

func TestValidate_ReferenceLocale(t *testing.T) {
	dir := newProject(t)

	_, err := run(t, dir, "", "validate", "en")

	assert.ErrorIs(t, err, translations.ErrReferenceLocaleRequested)
}

func TestStatus(t *testing.T) {
	dir := newProject(t)

	out, err := run(t, dir, "", "status")

	require.NoError(t, err)
	assert.Contains(t, out, "Locale: de (German)")
	assert.Contains(t, out, "Locale: es (Spanish)")
	assert.Contains(t, out, "FILE_ERROR")
	assert.Contains(t, out, "no reference translation")
}

func TestErrors_Ignores(t *testing.T) {
	dir := newProject(t)

	out, err := run(t, dir, "", "errors", "es")
	require.ErrorIs(t, err, ErrTranslationsErrors)
	assert.Contains(t, out, "There are 1 error(s)")

	out, err = run(t, dir, "", "ignore", "es", "user", "legacy")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully ignored es/user.legacy")

	out, err = run(t, dir, "", "errors", "es")
	require.NoError(t, err)
	assert.Contains(t, out, "There are no errors")

	_, err = run(t, dir, "", "errors", "es", "--no-ignore")
	require.ErrorIs(t, err, ErrTranslationsErrors)

	_, err = run(t, dir, "", "unignore", "es", "user", "legacy")
	require.NoError(t, err)

	_, err = run(t, dir, "", "errors", "es")
	assert.ErrorIs(t, err, ErrTranslationsErrors)
}

func TestGenerateAndFix(t *testing.T) {
	dir := newProject(t)

	out, err := run(t, dir, "", "generate-fixes", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 1 fix file(s)")

	generated := filepath.Join(dir, "storage", "translations", "fixes", "fixes-de-test.json")
	data, err := os.ReadFile(generated)
	require.NoError(t, err)
	doc, err := translations.DecodeFixDocument(data)
	require.NoError(t, err)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, "user", doc.Files[0].File)
	assert.True(t, doc.Files[0].Translations.Equal(readTree(t, filepath.Join(dir, "lang", "en", "user.json"))))

	tr, err := tree.ParseJSON([]byte(`{"name": "Name DE", "profile": {"bio": "Über mich"}}`))
	require.NoError(t, err)
	doc.Files[0].Translations = tr
	data, err = translations.EncodeFixDocument(doc)
	require.NoError(t, err)
	writeFiles(t, dir, map[string]string{"storage/translations/fixed/fixes-de-test.json": string(data)})

	out, err = run(t, dir, "", "fix", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "The locale(s) 'de' have been fixed")
	assert.True(t, readTree(t, filepath.Join(dir, "lang", "de", "user.json")).Equal(tr))

	_, err = run(t, dir, "", "validate")
	assert.NoError(t, err)
}

func TestFix_RequiresLocales(t *testing.T) {
	dir := newProject(t)

	_, err := run(t, dir, "", "fix")

	assert.Error(t, err)
}

func TestClean(t *testing.T) {
	dir := newProject(t)
	userPath := filepath.Join(dir, "lang", "es", "user.json")

	out, err := run(t, dir, "", "clean", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "legacy")
	assert.True(t, readTree(t, userPath).Has("legacy"))

	_, err = run(t, dir, "no\n", "clean")
	require.NoError(t, err)
	assert.True(t, readTree(t, userPath).Has("legacy"))

	out, err = run(t, dir, "yes\n", "clean")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleaned 1 dead translation(s)")
	assert.False(t, readTree(t, userPath).Has("legacy"))

	out, err = run(t, dir, "", "clean", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "There are no dead translations")
}

func TestLock(t *testing.T) {
	dir := newProject(t)
	_, err := run(t, dir, "", "validate", "es")
	require.NoError(t, err)

	writeFiles(t, dir, map[string]string{"lang/en/auth.json": `{"failed": "Login failed"}`})
	out, err := run(t, dir, "", "errors", "es")
	require.ErrorIs(t, err, ErrTranslationsErrors)
	assert.Contains(t, out, "reference translation updated")

	out, err = run(t, dir, "", "lock", "auth")
	require.NoError(t, err)
	assert.Contains(t, out, "Locked 1 file(s)")

	out, err = run(t, dir, "", "errors", "es")
	require.ErrorIs(t, err, ErrTranslationsErrors)
	assert.NotContains(t, out, "reference translation updated")

	out, err = run(t, dir, "", "lock")
	require.NoError(t, err)
	assert.Contains(t, out, "Locked 2 file(s)")
}

func TestInvalidConfiguration(t *testing.T) {
	dir := newProject(t)
	writeFiles(t, dir, map[string]string{"translations.yaml": "lang:\n  format: xml\n  reference_locale: fr\n"})

	_, err := run(t, dir, "", "status")

	require.Error(t, err)
	assert.ErrorIs(t, err, translations.ErrInvalidFormat)
	assert.ErrorIs(t, err, translations.ErrReferenceLocaleMissing)
}
