package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"translations-manager/core/config"
	"translations-manager/core/logger"
	"translations-manager/core/storage"
	"translations-manager/core/ui"
	"translations-manager/feature/translations"
	"translations-manager/feature/translations/naming"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// app holds everything a command needs for one invocation.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	svc    *translations.Service
}

// newApp loads configuration from dir and wires the translations service on a
// filesystem rooted at dir.
func newApp(dir string) (*app, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, logger.NewRunID())

	fsys := afero.NewBasePathFs(afero.NewOsFs(), dir)

	store, err := storage.NewFSStore(fsys, cfg.Storage, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	settings, err := translations.NewSettings(store, cfg.Lang, cfg.Fixes, cfg.Storage, cfg.Run)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	labeler, err := naming.New(cfg.Fixes.NameFormat, cfg.Fixes.Label, fsys, ".")
	if err != nil {
		return nil, err
	}

	svc, err := translations.NewService(store, settings, labeler, l)
	if err != nil {
		return nil, err
	}

	l.Debug("Loaded settings",
		zap.String("lang_dir", settings.LangDir),
		zap.String("reference", settings.Reference),
		zap.Strings("supported", settings.Supported),
	)
	return &app{cfg: cfg, logger: l, svc: svc}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func styles(w io.Writer) *ui.Styles {
	return ui.NewStyles(w, ui.ColorProfile())
}
