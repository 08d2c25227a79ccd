package tictactoe

import (
	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

// Focus selects which panel receives cursor keys.
type Focus int

const (
	FocusBoard Focus = iota
	FocusHistory
)

func (f Focus) String() string {
	if f == FocusHistory {
		return "history"
	}
	return "board"
}

// Game adapts a Session to the terminal platform: it maps input frames to
// board clicks and history jumps and draws the session.
type Game struct {
	cfg     *config.Config
	palette config.Palette
	symbols Symbols

	session    *Session
	cursor     int // Board square under the keyboard cursor
	histCursor int // History entry under the keyboard cursor
	histScroll int // First visible history entry
	focus      Focus

	screenW int
	screenH int
	layout  layout
}

// configPath is the --config value used by games created through the registry.
var configPath string

// SetConfigPath sets the config file used when a Game without an explicit
// config is reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{session: NewSession(), symbols: DefaultSymbols, cursor: 4}
}

// NewWithConfig creates a game with a fixed config.
func NewWithConfig(cfg config.Config) *Game {
	return &Game{
		cfg:     &cfg,
		session: NewSession(),
		symbols: Symbols{X: cfg.Marks.First, O: cfg.Marks.Second},
		cursor:  4,
	}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Session returns the session being played.
func (g *Game) Session() *Session {
	return g.session
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.cfg == nil {
		loaded, err := config.Load(configPath)
		if err != nil {
			loaded = config.DefaultConfig()
		}
		g.cfg = &loaded
	}

	palette, err := g.cfg.Theme.Palette()
	if err != nil {
		palette, _ = config.DefaultConfig().Theme.Palette()
	}
	g.palette = palette
	g.symbols = Symbols{X: g.cfg.Marks.First, O: g.cfg.Marks.Second}

	g.newSession()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

func (g *Game) newSession() {
	g.session = NewSession()
	g.cursor = 4
	g.histCursor = 0
	g.histScroll = 0
	g.focus = FocusBoard
}

// Resize recomputes the layout. The session is kept.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	layoutCfg := config.DefaultConfig().Layout
	if g.cfg != nil {
		layoutCfg = g.cfg.Layout
	}
	g.layout = computeLayout(width, height, layoutCfg)
	g.scrollHistory()
}

// Step applies the input of one UI event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	before := g.Snapshot()

	if in.Has(core.ActionRestart) {
		g.newSession()
	}

	if !g.layout.tooSmall {
		g.handleKeys(in)
		for _, p := range in.Clicks {
			g.handleClick(p)
		}
	}

	if g.focus == FocusBoard {
		g.histCursor = g.session.CurrentIndex()
	}
	g.histCursor = core.Clamp(g.histCursor, 0, g.session.Len()-1)
	g.scrollHistory()

	return core.StepResult{
		State:   g.State(),
		Changed: g.Snapshot() != before,
	}
}

func (g *Game) handleKeys(in core.InputFrame) {
	if in.Has(core.ActionFocus) {
		if g.focus == FocusBoard {
			g.focus = FocusHistory
			g.histCursor = g.session.CurrentIndex()
		} else {
			g.focus = FocusBoard
		}
	}

	if g.focus == FocusBoard {
		row, col := g.cursor/3, g.cursor%3
		switch {
		case in.Has(core.ActionUp):
			row--
		case in.Has(core.ActionDown):
			row++
		case in.Has(core.ActionLeft):
			col--
		case in.Has(core.ActionRight):
			col++
		}
		g.cursor = core.Clamp(row, 0, 2)*3 + core.Clamp(col, 0, 2)
	} else {
		switch {
		case in.Has(core.ActionUp):
			g.histCursor--
		case in.Has(core.ActionDown):
			g.histCursor++
		}
		g.histCursor = core.Clamp(g.histCursor, 0, g.session.Len()-1)
	}

	if in.Has(core.ActionConfirm) {
		if g.focus == FocusBoard {
			cells := g.session.Board().Cells()
			cells[g.cursor].Activate()
		} else {
			// Entries are generated from the history, so the index is in range.
			_ = g.session.Navigator().Activate(g.histCursor)
		}
	}

	// Stepping past either end of history is a no-op.
	if in.Has(core.ActionHistoryBack) {
		_ = g.session.JumpTo(g.session.CurrentIndex() - 1)
	}
	if in.Has(core.ActionHistoryNext) {
		_ = g.session.JumpTo(g.session.CurrentIndex() + 1)
	}
}

func (g *Game) handleClick(p core.Point) {
	for i, r := range g.layout.cells {
		if r.ContainsPoint(p) {
			g.focus = FocusBoard
			g.cursor = i
			cells := g.session.Board().Cells()
			cells[i].Activate()
			return
		}
	}

	nav := g.session.Navigator()
	for row := 0; row < g.layout.historyRows; row++ {
		k := g.histScroll + row
		if k >= len(nav.Entries) {
			break
		}
		if g.layout.historyRow(row).ContainsPoint(p) {
			g.focus = FocusHistory
			g.histCursor = k
			_ = nav.Activate(k)
			return
		}
	}
}

// scrollHistory keeps the focused entry inside the visible history rows.
func (g *Game) scrollHistory() {
	rows := g.layout.historyRows
	if rows <= 0 {
		g.histScroll = 0
		return
	}
	target := g.histCursor
	if target < g.histScroll {
		g.histScroll = target
	}
	if target >= g.histScroll+rows {
		g.histScroll = target - rows + 1
	}
	g.histScroll = core.Clamp(g.histScroll, 0, max(g.session.Len()-rows, 0))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	board := g.session.Board()
	return core.GameState{
		Status:   board.StatusWith(g.symbols),
		GameOver: Winner(board.Squares) != Empty,
		Moves:    g.session.CurrentIndex(),
	}
}
