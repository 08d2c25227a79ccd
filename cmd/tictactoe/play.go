package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

var flagNoMouse bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start a new game in the current terminal.

Controls:
  Arrows/HJKL  - Move the cursor
  Enter/Space  - Play the square, or jump to the history entry
  Tab          - Switch between board and history
  [ / ]        - Step one move back / forward in history
  R            - New game
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Squares and history entries can also be clicked with the mouse.

Examples:
  tictactoe play
  tictactoe play --no-mouse
  tictactoe play --config ./my-theme.yaml --log-file game.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoMouse, "no-mouse", false, "Disable mouse input")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "tictactoe"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tictactoe list' to see available games.")
		os.Exit(1)
	}

	// Fail before taking over the terminal.
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	size := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		size.ScreenW = w
		size.ScreenH = h
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("game started", "game", gameID, "width", size.ScreenW, "height", size.ScreenH)
	runErr := tui.Run(game, size, tui.Options{
		Mouse:  gameCfg.Mouse && !flagNoMouse,
		Logger: logger,
	})
	logger.Info("game ended", "game", gameID, "status", game.State().Status)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger returns a file logger for --log-file. The TUI owns the
// terminal, so without a log file events are discarded.
func openLogger() (*log.Logger, func(), error) {
	level := logLevel()
	if flagLogFile == "" {
		logger := log.NewWithOptions(io.Discard, log.Options{Level: level})
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tictactoe",
		Level:           level,
	})
	return logger, func() { _ = f.Close() }, nil
}
