package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Marks: MarksConfig{
			First:  "X",
			Second: "O",
		},
		Theme: ThemeConfig{
			First:       "bright_red",
			Second:      "bright_cyan",
			Grid:        "gray",
			Cursor:      "bright_yellow",
			WinningLine: "bright_green",
			History:     "default",
		},
		Layout: LayoutConfig{
			CellWidth:  7,
			CellHeight: 3,
		},
		Mouse: true,
	}
}

// DefaultYAML returns the embedded default config file, e.g. for
// printing a starting point for user configs.
func DefaultYAML() []byte {
	return defaultYAML
}
