package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/stickersmash/internal/compose"
	"github.com/jask/stickersmash/internal/config"
	"github.com/jask/stickersmash/internal/database"
	"github.com/jask/stickersmash/internal/database/repository"
	"github.com/jask/stickersmash/internal/export"
	"github.com/jask/stickersmash/internal/logging"
	"github.com/jask/stickersmash/internal/media"
	"github.com/jask/stickersmash/internal/sticker"
	"github.com/jask/stickersmash/internal/tui"
)

func runScreen(ctx context.Context, cfg config.Config) error {
	logger, closer, err := logging.New(logging.Config{Path: cfg.Log.Path, Level: cfg.Log.Level})
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	if err := os.MkdirAll(filepath.Dir(cfg.Library.DBPath), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Library.DBPath); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Library.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	// repositories
	assets := repository.NewLibraryRepo(db)
	grants := repository.NewPermissionRepo(db)

	catalog, err := sticker.Load(cfg.Stickers.Dir)
	if err != nil {
		return fmt.Errorf("stickers: %w", err)
	}
	compositor := &compose.Compositor{Catalog: catalog, CacheDir: cfg.Picker.CacheDir}

	perms := &media.Permissions{Dir: cfg.Library.Dir, Repo: grants}
	exporter, err := export.New(cfg.Export.Target, export.Capabilities{
		Rasterizer: compositor,
		Library:    &media.Library{Dir: cfg.Library.Dir, Assets: assets, Permissions: perms},
		Downloader: &media.Downloads{Dir: cfg.Export.DownloadsDir},
	}, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Str("target", cfg.Export.Target).
		Int("stickers", catalog.Len()).
		Str("library", cfg.Library.Dir).
		Msg("starting")

	screenCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	p := tea.NewProgram(tui.New(tui.Deps{
		Ctx:         screenCtx,
		Picker:      media.NewInteractivePicker(cfg.Picker.CacheDir),
		Permissions: perms,
		Exporter:    exporter,
		Catalog:     catalog,
		Composer:    compositor,
		Log:         logger.With().Str("component", "tui").Logger(),
		PhotoDir:    cfg.Picker.Dir,
	}), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("screen exited")
		return err
	}
	return nil
}
