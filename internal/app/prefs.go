package app

import (
	"context"
	"log/slog"

	"github.com/five82/shelf/internal/bind"
	"github.com/five82/shelf/internal/board"
	"github.com/five82/shelf/internal/prefs"
)

// followTheme saves the theme preference whenever the board's theme changes.
// It runs until ctx is cancelled and closes the slice on the way out.
func followTheme(ctx context.Context, theme *bind.Slice[board.Board, string], saver *prefs.Saver) {
	defer theme.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case <-theme.Changed():
			name := theme.Read()
			wrote, err := saver.Save(prefs.Prefs{Theme: name})
			if err != nil {
				slog.Warn("save prefs failed", "theme", name, "error", err)
				continue
			}
			if wrote {
				slog.Info("saved theme preference", "theme", name)
			}
		}
	}
}
