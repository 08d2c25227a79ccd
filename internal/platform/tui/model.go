package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

// Options configures a Model.
type Options struct {
	// Mouse enables mouse reporting so cells and history entries can be clicked.
	Mouse bool

	// Logger receives game events. Nil disables logging.
	Logger *log.Logger

	// Renderer styles the output. Nil uses the default renderer.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for playing a game. Every key or mouse
// message is turned into one input frame and stepped to completion before
// the next message is handled.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	styles   Styles
	opts     Options
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; the last rows are kept for the help bar.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	m := Model{
		game:   game,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
	}
	if opts.Renderer != nil {
		m.styles = NewStyles(opts.Renderer)
	} else {
		m.styles = DefaultStyles()
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	return m
}

// Init starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(core.RuntimeConfig{ScreenW: m.config.ScreenW, ScreenH: m.gameHeight()})
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resizeGame()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keys.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}
	if !frame.Empty() {
		m.step(frame)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.opts.Mouse {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	frame := core.NewInputFrame()
	frame.Click(msg.X, msg.Y)
	m.step(frame)
	return m, nil
}

// handleResize keeps the game running; only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.resizeGame()
	return m, nil
}

func (m *Model) resizeGame() {
	m.screen.Resize(m.config.ScreenW, m.gameHeight())
	m.game.Resize(m.config.ScreenW, m.gameHeight())
}

func (m *Model) step(frame core.InputFrame) {
	wasOver := m.state.GameOver
	result := m.game.Step(frame)
	m.state = result.State

	if m.opts.Logger == nil || !result.Changed {
		return
	}
	m.opts.Logger.Debug("step", "game", m.game.ID(), "status", m.state.Status, "moves", m.state.Moves)
	if m.state.GameOver && !wasOver {
		m.opts.Logger.Info("game over", "game", m.game.ID(), "status", m.state.Status, "moves", m.state.Moves)
	}
}

// gameHeight returns the rows left for the game above the help bar.
func (m Model) gameHeight() int {
	return max(m.config.ScreenH-m.helpHeight(), 0)
}

func (m Model) helpHeight() int {
	if m.help.ShowAll {
		rows := 0
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
		return rows
	}
	return 1
}

// State returns the game state after the last handled event.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.styles) + "\n" + m.styles.Help.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	_, err := tea.NewProgram(model, progOpts...).Run()
	return err
}
