// Package app provides the orchestration layer for the shelf application.
//
// # Overview
//
// This package wires together configuration, preferences, the board store,
// the background ticker and the UI. It is the composition root: every
// dependency is created here and handed down.
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read shelf config
//	       ├─────> setupLogging()      slog → log file (tea.LogToFile)
//	       ├─────> prefs.Load()        Read saved theme
//	       ├─────> NewStore()          bind.Create(board.New) + initial values
//	       ├─────> followTheme()       Theme slice → prefs.Saver
//	       ├─────> StartTicker()       Background producer
//	       └─────> ui.Run()            Start TUI (blocks)
//
// # Producers and Consumers
//
// The ticker goroutine writes to the store through the board's Tick action;
// the UI panes and the preference saver are consumers holding bind slices.
// The saver is a non-rendering consumer: it waits on its slice's Changed
// channel and persists the theme only when that slice changed, so ticks and
// counter updates never touch the prefs file.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Log file cannot be opened
//   - Initial values in the config do not fit the board
//
// Recoverable errors (logged):
//   - Preference save failures
package app
