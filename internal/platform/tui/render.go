package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Styles holds the lipgloss styles of one output. Local play uses the
// default renderer; SSH sessions get a renderer bound to the client.
type Styles struct {
	colors map[core.Color]lipgloss.Style
	Help   lipgloss.Style
}

// NewStyles builds styles for the given renderer. Bright colors are also bold.
func NewStyles(r *lipgloss.Renderer) Styles {
	st := Styles{
		colors: map[core.Color]lipgloss.Style{core.ColorDefault: r.NewStyle()},
		Help:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for c, code := range colorCodes {
		style := r.NewStyle().Foreground(lipgloss.Color(code))
		if c >= core.ColorBrightRed && c <= core.ColorBrightCyan {
			style = style.Bold(true)
		}
		st.colors[c] = style
	}
	return st
}

// DefaultStyles returns styles for the process's own terminal.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

func (st Styles) color(c core.Color) lipgloss.Style {
	if style, ok := st.colors[c]; ok {
		return style
	}
	return st.colors[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color are rendered as one run.
func RenderScreen(s *core.Screen, st Styles) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(st.color(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
