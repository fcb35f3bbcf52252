package translations

import (
	"translations-manager/core/storage"
	"translations-manager/feature/translations/naming"

	"go.uber.org/zap"
)

// Service bundles the components of one run, all sharing the same store and settings.
type Service struct {
	Settings   *Settings
	Files      *Files
	Ignores    *Ignores
	Lockfiles  *Lockfiles
	Comparator *Comparator
	Manager    *Manager
	Generator  *Generator
	Healer     *Healer
	Cleaner    *Cleaner
}

// NewService wires every component on top of store.
func NewService(store storage.Store, settings *Settings, labeler naming.Labeler, logger *zap.Logger) (*Service, error) {
	ignores, err := LoadIgnores(store, settings.Storage.IgnoresPath())
	if err != nil {
		return nil, err
	}

	files := NewFiles(store, settings)
	lockfiles := NewLockfiles(store, settings, logger)
	comparator := NewComparator(store, settings, lockfiles, ignores, logger)

	return &Service{
		Settings:   settings,
		Files:      files,
		Ignores:    ignores,
		Lockfiles:  lockfiles,
		Comparator: comparator,
		Manager:    NewManager(settings, files, comparator, logger),
		Generator:  NewGenerator(store, settings, labeler, logger),
		Healer:     NewHealer(store, settings, lockfiles, logger),
		Cleaner:    NewCleaner(store, settings, logger),
	}, nil
}
