package translations_test

import (
	"testing"

	"translations-manager/core/storage"
	"translations-manager/core/tree"
	"translations-manager/feature/translations"
	"translations-manager/feature/translations/naming"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	t     *testing.T
	fs    afero.Fs
	store *storage.FSStore
	svc   *translations.Service
}

type fixtureOption func(*translations.LangConfig)

func withSupported(locales ...string) fixtureOption {
	return func(c *translations.LangConfig) { c.SupportedLocales = locales }
}

func withFormat(format string) fixtureOption {
	return func(c *translations.LangConfig) { c.Format = format }
}

// newFixture lays out files (path relative to the workspace root) on an in-memory
// filesystem and wires a service with "en" as the reference locale.
func newFixture(t *testing.T, files map[string]string, opts ...fixtureOption) *fixture {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	f := &fixture{t: t, fs: fs}
	f.store = newStore(t, fs)
	f.svc = f.service(opts...)
	return f
}

func newStore(t *testing.T, fs afero.Fs) *storage.FSStore {
	t.Helper()
	store, err := storage.NewFSStore(fs, storage.Config{Dir: "storage", CacheSize: 32}, zap.NewNop())
	require.NoError(t, err)
	return store
}

// service builds a fresh service, as a new command invocation would.
func (f *fixture) service(opts ...fixtureOption) *translations.Service {
	f.t.Helper()

	lang := translations.LangConfig{Dir: "lang", Format: "json", ReferenceLocale: "en"}
	for _, opt := range opts {
		opt(&lang)
	}
	settings, err := translations.NewSettings(
		f.store,
		lang,
		translations.FixesConfig{NameFormat: "date"},
		storage.Config{Dir: "storage"},
		translations.RunConfig{Parallelism: 2},
	)
	require.NoError(f.t, err)

	svc, err := translations.NewService(f.store, settings, naming.Static("test"), zap.NewNop())
	require.NoError(f.t, err)
	return svc
}

func (f *fixture) write(path, content string) {
	f.t.Helper()
	require.NoError(f.t, afero.WriteFile(f.fs, path, []byte(content), 0o644))
}

func (f *fixture) read(path string) *tree.Tree {
	f.t.Helper()
	data, err := afero.ReadFile(f.fs, path)
	require.NoError(f.t, err)
	t, err := tree.ParseJSON(data)
	require.NoError(f.t, err)
	return t
}

func (f *fixture) raw(path string) string {
	f.t.Helper()
	data, err := afero.ReadFile(f.fs, path)
	require.NoError(f.t, err)
	return string(data)
}

func parse(t *testing.T, s string) *tree.Tree {
	t.Helper()
	tr, err := tree.ParseJSON([]byte(s))
	require.NoError(t, err)
	return tr
}

type keyKind struct {
	Key  string
	Kind translations.Kind
}

func keyKinds(errs []translations.Error) []keyKind {
	out := make([]keyKind, 0, len(errs))
	for _, e := range errs {
		out = append(out, keyKind{Key: e.Key, Kind: e.Kind})
	}
	return out
}
