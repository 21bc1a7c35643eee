package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()

	assert.Len(t, names, 3)
	for _, name := range names {
		assert.Equal(t, name, GetTheme(name).Name)
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"unknown", "Nightfox"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextTheme(tt.current), "NextTheme(%q)", tt.current)
	}
}

func TestGetTheme_FallsBackToNightfox(t *testing.T) {
	assert.Equal(t, "Nightfox", GetTheme("missing").Name)
}
