package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"translations-manager/core/tree"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store defines the interface for structured tree storage.
type Store interface {
	// Exists reports whether path exists.
	Exists(path string) bool
	// ReadTree reads and decodes the tree stored at path. The codec is picked from the extension.
	ReadTree(path string) (*tree.Tree, error)
	// WriteTree encodes t and writes it to path, creating parent directories.
	WriteTree(path string, t *tree.Tree) error
	// ReadFile returns the raw content of path.
	ReadFile(path string) ([]byte, error)
	// WriteFile writes data to path, creating parent directories.
	WriteFile(path string, data []byte) error
	// Files lists the names of regular files directly inside dir, sorted.
	Files(dir string) ([]string, error)
	// Walk lists every regular file below dir as a slash separated path relative to dir, sorted.
	Walk(dir string) ([]string, error)
	// Dirs lists the names of the directories directly inside dir, sorted.
	Dirs(dir string) ([]string, error)
}

type entry struct {
	sum  uint64
	tree *tree.Tree
}

// FSStore is a Store backed by an afero filesystem.
// Parsed trees are cached by content hash, and writes of unchanged content are skipped.
// Concurrent reads of the same content decode it once.
type FSStore struct {
	fs     afero.Fs
	cache  *lru.Cache[string, entry]
	group  singleflight.Group
	logger *zap.Logger
}

// NewFSStore creates a store on top of fsys.
func NewFSStore(fsys afero.Fs, cfg Config, logger *zap.Logger) (*FSStore, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = 256
	}
	cache, err := lru.New[string, entry](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create tree cache")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FSStore{fs: fsys, cache: cache, logger: logger}, nil
}

// Fs returns the underlying filesystem.
func (s *FSStore) Fs() afero.Fs {
	return s.fs
}

func (s *FSStore) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

func (s *FSStore) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, zerr.With(zerr.Wrap(err, ErrReadFailed.Error()), "path", path)
	}
	return data, nil
}

func (s *FSStore) ReadTree(path string) (*tree.Tree, error) {
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sum := xxhash.Sum64(data)
	if e, ok := s.cache.Get(path); ok && e.sum == sum {
		return e.tree.Clone(), nil
	}

	v, err, _ := s.group.Do(fmt.Sprintf("%s:%x", path, sum), func() (any, error) {
		t, err := Decode(path, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailed, path, err)
		}
		s.cache.Add(path, entry{sum: sum, tree: t})
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*tree.Tree).Clone(), nil
}

func (s *FSStore) WriteTree(path string, t *tree.Tree) error {
	data, err := Encode(path, t)
	if err != nil {
		return zerr.With(zerr.Wrap(err, ErrEncodeFailed.Error()), "path", path)
	}
	if err := s.WriteFile(path, data); err != nil {
		return err
	}
	s.cache.Add(path, entry{sum: xxhash.Sum64(data), tree: t.Clone()})
	return nil
}

func (s *FSStore) WriteFile(path string, data []byte) error {
	if current, err := afero.ReadFile(s.fs, path); err == nil && xxhash.Sum64(current) == xxhash.Sum64(data) && bytes.Equal(current, data) {
		s.logger.Debug("Skipping unchanged file", zap.String("path", path))
		return nil
	}

	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, ErrWriteFailed.Error()), "path", dir)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, ErrWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, ErrWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, ErrWriteFailed.Error()), "path", path)
	}
	if err := s.fs.Chmod(tmpName, filePerm); err != nil {
		s.logger.Debug("Failed to chmod temp file", zap.String("path", tmpName), zap.Error(err))
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, ErrWriteFailed.Error()), "path", path)
	}

	s.logger.Debug("Wrote file", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

func (s *FSStore) Files(dir string) ([]string, error) {
	infos, err := s.readDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.Mode().IsRegular() {
			names = append(names, info.Name())
		}
	}
	return names, nil
}

func (s *FSStore) Dirs(dir string) ([]string, error) {
	infos, err := s.readDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			names = append(names, info.Name())
		}
	}
	return names, nil
}

func (s *FSStore) Walk(dir string) ([]string, error) {
	if ok, _ := afero.DirExists(s.fs, dir); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
	}

	var files []string
	err := afero.Walk(s.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrListFailed.Error()), "path", dir)
	}

	sort.Strings(files)
	return files, nil
}

func (s *FSStore) readDir(dir string) ([]os.FileInfo, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, zerr.With(zerr.Wrap(err, ErrListFailed.Error()), "path", dir)
	}
	return infos, nil
}

// Decode parses data with the codec matching the extension of path.
func Decode(path string, data []byte) (*tree.Tree, error) {
	if isYAML(path) {
		return tree.ParseYAML(data)
	}
	return tree.ParseJSON(data)
}

// Encode serializes t with the codec matching the extension of path.
func Encode(path string, t *tree.Tree) ([]byte, error) {
	if isYAML(path) {
		return tree.EncodeYAML(t)
	}
	return tree.EncodeJSON(t)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
