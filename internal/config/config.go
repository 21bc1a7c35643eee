package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures shelf's startup settings.
type Config struct {
	TickEvery time.Duration
	Replace   bool
	LogPath   string
	// Initial holds field overrides applied to the board after it is created,
	// keyed like the board's `state` struct tags.
	Initial map[string]any
}

const (
	defaultConfigPath = "~/.config/shelf/config.toml"
	defaultLogPath    = "~/.local/state/shelf/shelf.log"
	defaultTickEvery  = time.Second
)

// Load locates and parses the shelf config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{TickEvery: defaultTickEvery, LogPath: mustExpand(defaultLogPath)}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		TickSeconds int            `toml:"tick_seconds"`
		Replace     bool           `toml:"replace"`
		LogPath     string         `toml:"log_path"`
		Initial     map[string]any `toml:"initial"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.TickSeconds < 0 {
		return Config{}, fmt.Errorf("parse config: tick_seconds must not be negative, got %d", raw.TickSeconds)
	}
	if raw.TickSeconds > 0 {
		cfg.TickEvery = time.Duration(raw.TickSeconds) * time.Second
	}

	cfg.Replace = raw.Replace
	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	if len(raw.Initial) > 0 {
		cfg.Initial = raw.Initial
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
