package mocks

import (
	"translations-manager/core/tree"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of storage.Store
type Store struct {
	mock.Mock
}

func (m *Store) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *Store) ReadTree(path string) (*tree.Tree, error) {
	args := m.Called(path)
	if t, ok := args.Get(0).(*tree.Tree); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) WriteTree(path string, t *tree.Tree) error {
	args := m.Called(path, t)
	return args.Error(0)
}

func (m *Store) ReadFile(path string) ([]byte, error) {
	args := m.Called(path)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) WriteFile(path string, data []byte) error {
	args := m.Called(path, data)
	return args.Error(0)
}

func (m *Store) Files(dir string) ([]string, error) {
	args := m.Called(dir)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Walk(dir string) ([]string, error) {
	args := m.Called(dir)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Dirs(dir string) ([]string, error) {
	args := m.Called(dir)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}
