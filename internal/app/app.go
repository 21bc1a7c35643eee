package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/bind"
	"github.com/five82/shelf/internal/board"
	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/state"
	"github.com/five82/shelf/internal/ui"
)

// Options configure the shelf application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shelf/prefs.toml
	TickEvery  int    // seconds; zero uses the config value
	LogPath    string // empty uses the config value
}

// Run boots the shelf TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogPath != "" {
		cfg.LogPath = opts.LogPath
	}
	if opts.TickEvery > 0 {
		cfg.TickEvery = time.Duration(opts.TickEvery) * time.Second
	}

	closeLog, err := setupLogging(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	store, err := NewStore(cfg, userPrefs)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	theme := bind.Use(store, board.Theme)
	go followTheme(ctx, theme, prefs.NewSaver(opts.PrefsPath, userPrefs))

	StartTicker(ctx, store.Store, cfg.TickEvery)

	slog.Info("shelf started", "tick", cfg.TickEvery, "replace", cfg.Replace)
	return ui.Run(ui.Options{Context: ctx, Store: store})
}

// NewStore creates the board store with the configured initial values and
// the saved theme. Initial values are written before the store exists, so
// they work in replace mode too.
func NewStore(cfg config.Config, userPrefs prefs.Prefs) (*bind.Bound[board.Board], error) {
	var opts []state.Option
	if cfg.Replace {
		opts = append(opts, state.WithReplace())
	}

	var initErr error
	store := bind.Create(func(set state.SetFunc[board.Board]) *board.Board {
		b := board.New(set)
		initErr = state.Fields[board.Board](cfg.Initial).Apply(b)
		return b
	}, opts...)
	if initErr != nil {
		return nil, fmt.Errorf("apply initial state: %w", initErr)
	}

	store.GetState().SetTheme(userPrefs.Theme)
	return store, nil
}

// setupLogging routes the default slog logger to path. The terminal belongs
// to the TUI, so nothing is logged to stderr while it runs.
func setupLogging(path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, "shelf")
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { _ = f.Close() }, nil
}
