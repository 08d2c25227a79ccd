package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Screen layout
const (
	statusY       = 2
	boardTop      = 4
	boardLeft     = 2
	historyGap    = 4
	historyWidth  = 22
	historyHeader = 2  // Title and underline
	maxHistory    = 10 // Empty board plus nine moves
)

// layout holds the screen rectangles used for drawing and hit testing.
type layout struct {
	cellW, cellH int
	board        core.Rect
	cells        [9]core.Rect
	history      core.Rect
	historyRows  int
	tooSmall     bool
}

func computeLayout(w, h int, lc config.LayoutConfig) layout {
	cw := core.Clamp(lc.CellWidth, config.MinCellWidth, config.MaxCellWidth)
	ch := core.Clamp(lc.CellHeight, config.MinCellHeight, config.MaxCellHeight)

	l := layout{cellW: cw, cellH: ch}
	l.board = core.NewRect(boardLeft, boardTop, 3*cw+4, 3*ch+4)
	for i := range l.cells {
		row, col := i/3, i%3
		l.cells[i] = core.NewRect(
			boardLeft+1+col*(cw+1),
			boardTop+1+row*(ch+1),
			cw, ch,
		)
	}

	hx := l.board.Right() + historyGap
	l.history = core.NewRect(hx, boardTop, historyWidth, max(h-boardTop, 0))
	l.historyRows = min(maxHistory, h-boardTop-historyHeader)

	l.tooSmall = w < hx+historyWidth || h < l.board.Bottom() || l.historyRows < 1
	return l
}

// historyRow returns the clickable line of the given visible history row.
func (l layout) historyRow(row int) core.Rect {
	return core.NewRect(l.history.X, l.history.Y+historyHeader+row, l.history.W, 1)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.layout.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderStatus(dst)
	g.renderGrid(dst)
	g.renderMarks(dst)
	g.renderHistory(dst)
}

// renderHUD draws the top title bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s - Move %d of %d", g.Title(), g.session.CurrentIndex(), g.session.Len()-1)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', g.palette.Grid)
}

func (g *Game) renderStatus(dst *core.Screen) {
	board := g.session.Board()
	color := g.markColor(board.NextMark())
	if w := Winner(board.Squares); w != Empty {
		color = g.palette.WinningLine
	}
	dst.DrawTextColored(boardLeft, statusY, board.StatusWith(g.symbols), color)
}

// renderGrid draws the board frame and the lines between cells.
func (g *Game) renderGrid(dst *core.Screen) {
	b := g.layout.board
	c := g.palette.Grid
	dst.DrawBox(b, c)

	for k := 1; k < 3; k++ {
		x := b.X + k*(g.layout.cellW+1)
		dst.DrawVLine(x, b.Y+1, b.H-2, '│', c)
		dst.SetColored(x, b.Y, '┬', c)
		dst.SetColored(x, b.Bottom()-1, '┴', c)

		y := b.Y + k*(g.layout.cellH+1)
		dst.DrawHLine(b.X+1, y, b.W-2, '─', c)
		dst.SetColored(b.X, y, '├', c)
		dst.SetColored(b.Right()-1, y, '┤', c)
	}
	for k := 1; k < 3; k++ {
		for j := 1; j < 3; j++ {
			dst.SetColored(b.X+k*(g.layout.cellW+1), b.Y+j*(g.layout.cellH+1), '┼', c)
		}
	}
}

func (g *Game) renderMarks(dst *core.Screen) {
	board := g.session.Board()
	line, won := WinningLine(board.Squares)

	for i, cell := range board.Cells() {
		cx, cy := g.layout.cells[i].Center()

		color := g.markColor(cell.Value)
		if won && (line[0] == i || line[1] == i || line[2] == i) {
			color = g.palette.WinningLine
		}
		dst.DrawTextColored(cx, cy, cell.Label(g.symbols), color)

		if g.focus == FocusBoard && i == g.cursor {
			dst.SetColored(cx-1, cy, '[', g.palette.Cursor)
			dst.SetColored(cx+1, cy, ']', g.palette.Cursor)
		}
	}
}

func (g *Game) renderHistory(dst *core.Screen) {
	h := g.layout.history
	dst.DrawTextColored(h.X, h.Y, "History", g.palette.History)
	dst.DrawHLine(h.X, h.Y+1, len("History"), '─', g.palette.Grid)

	entries := g.session.Navigator().Entries
	if g.histScroll > 0 {
		dst.DrawTextColored(h.X+len("History")+1, h.Y, "↑", g.palette.Grid)
	}
	if g.histScroll+g.layout.historyRows < len(entries) {
		dst.DrawTextColored(h.X+len("History")+3, h.Y, "↓", g.palette.Grid)
	}

	for row := 0; row < g.layout.historyRows; row++ {
		k := g.histScroll + row
		if k >= len(entries) {
			break
		}
		entry := entries[k]

		cursor, color := "  ", g.palette.History
		if g.focus == FocusHistory && k == g.histCursor {
			cursor, color = "> ", g.palette.Cursor
		}
		current := "  "
		if entry.Current {
			current = "● "
		}

		r := g.layout.historyRow(row)
		dst.DrawTextColored(r.X, r.Y, cursor+current+entry.Label, color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box, core.ColorDefault)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorDefault)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}

func (g *Game) markColor(m Mark) core.Color {
	switch m {
	case X:
		return g.palette.First
	case O:
		return g.palette.Second
	default:
		return core.ColorDefault
	}
}
