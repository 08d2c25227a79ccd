package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Status   string // Status line shown to the players
	GameOver bool   // Whether a winner stands on the displayed board
	Moves    int    // Moves played on the displayed board
}

// StepResult is returned by Game.Step() after each input event.
type StepResult struct {
	State   GameState
	Changed bool // Whether the input changed the session or the cursor
}
