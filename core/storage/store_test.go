package storage_test

import (
	"fmt"
	"testing"

	"translations-manager/core/storage"
	"translations-manager/core/tree"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newStore(t *testing.T, fs afero.Fs) *storage.FSStore {
	t.Helper()
	s, err := storage.NewFSStore(fs, storage.Config{CacheSize: 8}, zap.NewNop())
	require.NoError(t, err)
	return s
}

func sample() *tree.Tree {
	t := tree.New()
	t.Set("title", tree.Text("Title"))
	user := tree.New()
	user.Set("name", tree.Text("Name"))
	t.Set("user", user)
	return t
}

func TestFSStore_WriteAndReadTree(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "json", path: "lang/en/user.json"},
		{name: "yaml", path: "lang/en/user.yaml"},
		{name: "yml", path: "lang/en/user.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			s := newStore(t, fs)

			require.NoError(t, s.WriteTree(tt.path, sample()))
			assert.True(t, s.Exists(tt.path))

			got, err := s.ReadTree(tt.path)
			require.NoError(t, err)
			assert.True(t, sample().Equal(got))

			raw, err := afero.ReadFile(fs, tt.path)
			require.NoError(t, err)
			want, err := storage.Encode(tt.path, sample())
			require.NoError(t, err)
			assert.Equal(t, string(want), string(raw))
		})
	}
}

func TestFSStore_ReadTreeErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "broken.json", []byte(`{"a": `), 0o644))
	s := newStore(t, fs)

	_, err := s.ReadTree("missing.json")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.ReadTree("broken.json")
	assert.ErrorIs(t, err, storage.ErrDecodeFailed)
	assert.ErrorIs(t, err, tree.ErrMalformed)
}

func TestFSStore_ReadTreeReturnsIndependentCopies(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newStore(t, fs)
	require.NoError(t, s.WriteTree("a.json", sample()))

	first, err := s.ReadTree("a.json")
	require.NoError(t, err)
	first.Set("title", tree.Text("Mutated"))

	second, err := s.ReadTree("a.json")
	require.NoError(t, err)
	leaf, _ := second.Leaf("title")
	assert.Equal(t, "Title", leaf.Text())
}

func TestFSStore_ReadTreeSeesExternalChanges(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newStore(t, fs)
	require.NoError(t, s.WriteTree("a.json", sample()))

	_, err := s.ReadTree("a.json")
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fs, "a.json", []byte(`{"changed": "yes"}`), 0o644))

	got, err := s.ReadTree("a.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"changed"}, got.Keys())
}

func TestFSStore_ConcurrentReadTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newStore(t, fs)
	require.NoError(t, s.WriteTree("lang/en/user.json", sample()))

	trees := make([]*tree.Tree, 16)
	var g errgroup.Group
	for i := range trees {
		g.Go(func() error {
			tr, err := s.ReadTree("lang/en/user.json")
			if err != nil {
				return err
			}
			tr.Set("reader", tree.Text(fmt.Sprint(i)))
			trees[i] = tr
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, tr := range trees {
		leaf, ok := tr.Leaf("reader")
		require.True(t, ok)
		assert.Equal(t, fmt.Sprint(i), leaf.Text())
	}
	fresh, err := s.ReadTree("lang/en/user.json")
	require.NoError(t, err)
	assert.True(t, fresh.Equal(sample()))
}

func TestFSStore_WriteFileSkipsUnchangedContent(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "a.json", []byte("same"), 0o644))
	s := newStore(t, afero.NewReadOnlyFs(base))

	assert.NoError(t, s.WriteFile("a.json", []byte("same")))

	err := s.WriteFile("a.json", []byte("different"))
	assert.ErrorContains(t, err, storage.ErrWriteFailed.Error())
}

func TestFSStore_WriteFileLeavesNoTempFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := newStore(t, fs)

	require.NoError(t, s.WriteFile("out/fixes-de-main.json", []byte("{}")))
	require.NoError(t, s.WriteFile("out/fixes-de-main.json", []byte(`{"a": "b"}`)))

	names, err := s.Files("out")
	require.NoError(t, err)
	assert.Equal(t, []string{"fixes-de-main.json"}, names)
}

func TestFSStore_Listing(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, p := range []string{
		"lang/en/user.json",
		"lang/en/auth/login.json",
		"lang/en/auth/deep/x.json",
		"lang/de/user.json",
	} {
		require.NoError(t, afero.WriteFile(fs, p, []byte("{}"), 0o644))
	}
	require.NoError(t, fs.MkdirAll("lang/fr", 0o755))
	s := newStore(t, fs)

	dirs, err := s.Dirs("lang")
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en", "fr"}, dirs)

	files, err := s.Files("lang/en")
	require.NoError(t, err)
	assert.Equal(t, []string{"user.json"}, files)

	walked, err := s.Walk("lang/en")
	require.NoError(t, err)
	assert.Equal(t, []string{"auth/deep/x.json", "auth/login.json", "user.json"}, walked)

	_, err = s.Dirs("nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.Walk("nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestConfig_Paths(t *testing.T) {
	cfg := storage.Config{Dir: "storage/translations"}

	assert.Equal(t, "storage/translations/lock", cfg.LockDir())
	assert.Equal(t, "storage/translations/fixes", cfg.FixesDir())
	assert.Equal(t, "storage/translations/fixed", cfg.FixedDir())
	assert.Equal(t, "storage/translations/ignores.toml", cfg.IgnoresPath())
}
