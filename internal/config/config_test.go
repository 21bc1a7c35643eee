package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func defaultLog(t *testing.T) string {
	t.Helper()
	want, err := expandPath(defaultLogPath)
	require.NoError(t, err)
	return want
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)

	assert.Equal(t, defaultTickEvery, cfg.TickEvery)
	assert.False(t, cfg.Replace)
	assert.Equal(t, defaultLog(t), cfg.LogPath)
	assert.Nil(t, cfg.Initial)
}

func TestLoad_ParsesConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
tick_seconds = 3
replace = true
log_path = "  ~/logs/shelf.log  "

[initial]
count = 10
theme = "Slate"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.TickEvery)
	assert.True(t, cfg.Replace)
	assert.Equal(t, filepath.Join(home, "logs", "shelf.log"), cfg.LogPath)
	assert.Equal(t, map[string]any{"count": int64(10), "theme": "Slate"}, cfg.Initial)
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
tick_seconds = 0
log_path = "   "
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, defaultTickEvery, cfg.TickEvery)
	assert.Equal(t, defaultLog(t), cfg.LogPath)
}

func TestLoad_NegativeTickFails(t *testing.T) {
	_, err := Load(writeConfig(t, `tick_seconds = -1`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick_seconds")
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `tick_seconds = [`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "a/b"), got)
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	_, err := expandPath("   ")

	assert.Error(t, err)
}
