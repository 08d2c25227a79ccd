package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

func testStyles(profile termenv.Profile) Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return NewStyles(r)
}

func testScreen() *core.Screen {
	scr := core.NewScreen(12, 2)
	scr.DrawText(0, 0, "Next: ")
	scr.DrawTextColored(6, 0, "X", core.ColorBrightRed)
	scr.DrawTextColored(0, 1, "history", core.ColorGray)
	return scr
}

func TestRenderScreenPlain(t *testing.T) {
	out := RenderScreen(testScreen(), testStyles(termenv.Ascii))

	want := "Next: X     \nhistory     "
	if out != want {
		t.Errorf("RenderScreen =\n%q\nwant\n%q", out, want)
	}
}

func TestRenderScreenColored(t *testing.T) {
	out := RenderScreen(testScreen(), testStyles(termenv.ANSI256))

	if !strings.Contains(out, "\x1b[") {
		t.Fatal("expected ANSI escape sequences")
	}
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"Next: ", "X", "history"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestStylesCoverPalette(t *testing.T) {
	st := testStyles(termenv.Ascii)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := st.colors[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
