// Package config loads shelf's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/shelf/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/shelf/config.toml
//   - Tick interval: 1 second
//   - Store mode: merge (replace = false)
//   - Log file: ~/.local/state/shelf/shelf.log
//
// # TOML Format
//
//	tick_seconds = 2
//	replace = false
//	log_path = "~/tmp/shelf.log"
//
//	[initial]
//	count = 10
//	step = 5
//	theme = "Kanagawa"
//
// The [initial] table is passed to the store as a state.Fields update, so its
// keys follow the board's `state` struct tags. Values are validated there, not
// here.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files, invalid TOML and a
// negative tick_seconds are returned wrapped ("open config", "read config",
// "parse config").
package config
