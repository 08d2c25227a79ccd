// tictactoe is a terminal tic-tac-toe game with a scrubbable move history.
//
// Usage:
//
//	tictactoe                - Play in the current terminal
//	tictactoe play [game]    - Same as above
//	tictactoe serve          - Start SSH server for remote play
//	tictactoe list           - List available games
//	tictactoe config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write game events to a log file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

var (
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe in your terminal",
	Long: `Tic-tac-toe for two players sharing one terminal. Every move is kept
in a history list; jump to any earlier position and play on from there.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  tictactoe
  tictactoe --config ./my-theme.yaml
  tictactoe serve --ssh :2222`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		tictactoe.SetConfigPath(flagConfig)
	},
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// logLevel parses --log-level, exiting on invalid values.
func logLevel() log.Level {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return level
}
