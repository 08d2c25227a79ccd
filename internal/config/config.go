// Package config provides YAML-based configuration loading for the
// tic-tac-toe display: mark symbols, colors and cell geometry.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// ErrInvalidMarks is returned by Validate when the mark symbols cannot be
// told apart on the board.
var ErrInvalidMarks = errors.New("config: invalid mark symbols")

// Config contains all display configuration for the game.
type Config struct {
	Marks  MarksConfig  `yaml:"marks"`
	Theme  ThemeConfig  `yaml:"theme"`
	Layout LayoutConfig `yaml:"layout"`
	Mouse  bool         `yaml:"mouse"`
}

// MarksConfig defines the symbols drawn for the two players.
type MarksConfig struct {
	First  string `yaml:"first"`  // Player moving on even history indices
	Second string `yaml:"second"` // Player moving on odd history indices
}

// ThemeConfig holds color names understood by core.ParseColor.
type ThemeConfig struct {
	First       string `yaml:"first"`
	Second      string `yaml:"second"`
	Grid        string `yaml:"grid"`
	Cursor      string `yaml:"cursor"`
	WinningLine string `yaml:"winning_line"`
	History     string `yaml:"history"`
}

// LayoutConfig defines the on-screen size of one board cell.
type LayoutConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// Palette is a ThemeConfig resolved to core colors.
type Palette struct {
	First       core.Color
	Second      core.Color
	Grid        core.Color
	Cursor      core.Color
	WinningLine core.Color
	History     core.Color
}

// Cell size bounds; smaller cells cannot hold a centered mark.
const (
	MinCellWidth  = 3
	MinCellHeight = 1
	MaxCellWidth  = 15
	MaxCellHeight = 7
)

// Validate checks the config for values the renderer cannot use.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Marks.First) != 1 || utf8.RuneCountInString(c.Marks.Second) != 1 {
		return fmt.Errorf("%w: each mark must be exactly one character, got %q and %q",
			ErrInvalidMarks, c.Marks.First, c.Marks.Second)
	}
	if c.Marks.First == c.Marks.Second {
		return fmt.Errorf("%w: both players use %q", ErrInvalidMarks, c.Marks.First)
	}
	if c.Marks.First == " " || c.Marks.Second == " " {
		return fmt.Errorf("%w: a mark cannot be blank", ErrInvalidMarks)
	}

	if _, err := c.Theme.Palette(); err != nil {
		return err
	}

	if c.Layout.CellWidth < MinCellWidth || c.Layout.CellWidth > MaxCellWidth {
		return fmt.Errorf("config: cell_width %d out of range [%d, %d]",
			c.Layout.CellWidth, MinCellWidth, MaxCellWidth)
	}
	if c.Layout.CellHeight < MinCellHeight || c.Layout.CellHeight > MaxCellHeight {
		return fmt.Errorf("config: cell_height %d out of range [%d, %d]",
			c.Layout.CellHeight, MinCellHeight, MaxCellHeight)
	}
	return nil
}

// Palette resolves all theme color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"first", t.First, &p.First},
		{"second", t.Second, &p.Second},
		{"grid", t.Grid, &p.Grid},
		{"cursor", t.Cursor, &p.Cursor},
		{"winning_line", t.WinningLine, &p.WinningLine},
		{"history", t.History, &p.History},
	}
	for _, f := range fields {
		c, ok := core.ParseColor(f.name)
		if !ok {
			return Palette{}, fmt.Errorf("config: theme.%s: unknown color %q", f.key, f.name)
		}
		*f.dst = c
	}
	return p, nil
}
