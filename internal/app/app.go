package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tavisk/lux/internal/config"
	"github.com/tavisk/lux/internal/library"
	"github.com/tavisk/lux/internal/logging"
	"github.com/tavisk/lux/internal/prefs"
	"github.com/tavisk/lux/internal/ui"
)

// Options configure the lux application.
type Options struct {
	ConfigPath  string
	PrefsPath   string   // empty uses default ~/.config/lux/prefs.toml
	Dirs        []string // extra image directories; appended to config
	Theme       string   // overrides the saved theme preference
	LogLevel    string   // zap level name; empty disables file logging
	RescanEvery int      // seconds; zero uses the configured interval
}

// Run boots the lux TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.LibraryDirs = append(cfg.LibraryDirs, opts.Dirs...)

	if opts.LogLevel != "" {
		if err := logging.Initialize(opts.LogLevel, logging.DefaultPath()); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer logging.Sync()
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	theme := userPrefs.Theme
	if opts.Theme != "" {
		theme = opts.Theme
	}

	store := &library.Store{}

	// Populate the store before the UI starts so the first frame has
	// images. Scan errors are tolerable here; the rescanner retries.
	items, err := library.Scan(cfg.LibraryDirs, cfg.Extensions)
	store.Update(items, err)
	if err != nil {
		logging.L().Warn("initial library scan", zap.Error(err))
	}

	interval := time.Duration(cfg.RescanSeconds) * time.Second
	if opts.RescanEvery > 0 {
		interval = time.Duration(opts.RescanEvery) * time.Second
	}
	library.StartScanner(ctx, store, cfg.LibraryDirs, cfg.Extensions, interval)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		ThemeName: theme,
		PrefsPath: opts.PrefsPath,
	})
}
