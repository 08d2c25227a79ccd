package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
marks:
  first: "A"
  second: "B"
layout:
  cell_width: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "A", cfg.Marks.First)
	assert.Equal(t, "B", cfg.Marks.Second)
	assert.Equal(t, 5, cfg.Layout.CellWidth)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultConfig().Layout.CellHeight, cfg.Layout.CellHeight)
	assert.Equal(t, DefaultConfig().Theme, cfg.Theme)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeConfig(t, filepath.Join(dir, "bad"), "marks: [unterminated")
	_, err = Load(bad)
	assert.Error(t, err)

	same := writeConfig(t, filepath.Join(dir, "same"), `
marks:
  first: "X"
  second: "X"
`)
	_, err = Load(same)
	assert.ErrorIs(t, err, ErrInvalidMarks)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// Local configs directory.
	writeConfig(t, filepath.Join(work, "configs"), "marks:\n  first: \"L\"\n  second: \"O\"\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "L", cfg.Marks.First)

	// User config wins over local.
	writeConfig(t, filepath.Join(home, ".tictactoe", "configs"), "marks:\n  first: \"U\"\n  second: \"O\"\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "U", cfg.Marks.First)

	// A broken user config is skipped.
	writeConfig(t, filepath.Join(home, ".tictactoe", "configs"), "theme:\n  first: mauve\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "L", cfg.Marks.First)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unicode marks", func(c *Config) { c.Marks.First, c.Marks.Second = "✕", "◯" }, false},
		{"empty mark", func(c *Config) { c.Marks.First = "" }, true},
		{"two-rune mark", func(c *Config) { c.Marks.Second = "OO" }, true},
		{"blank mark", func(c *Config) { c.Marks.Second = " " }, true},
		{"unknown color", func(c *Config) { c.Theme.Cursor = "mauve" }, true},
		{"narrow cell", func(c *Config) { c.Layout.CellWidth = 2 }, true},
		{"tall cell", func(c *Config) { c.Layout.CellHeight = MaxCellHeight + 1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	p, err := DefaultConfig().Theme.Palette()
	require.NoError(t, err)
	assert.Equal(t, core.ColorBrightRed, p.First)
	assert.Equal(t, core.ColorBrightCyan, p.Second)
	assert.Equal(t, core.ColorDefault, p.History)
}
