package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/shelf/internal/board"
	"github.com/five82/shelf/internal/state"
)

const defaultTickInterval = time.Second

// StartTicker launches a background goroutine that advances the board's
// clock at a fixed cadence. It returns immediately.
func StartTicker(ctx context.Context, store *state.Store[board.Board], interval time.Duration) {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Debug("ticker stopped", "reason", ctx.Err())
				return
			case at := <-ticker.C:
				tick(store, at)
			}
		}
	}()
}

func tick(store *state.Store[board.Board], at time.Time) {
	store.GetState().Tick(at)
	slog.Debug("tick", "ticks", store.GetState().Ticks)
}
