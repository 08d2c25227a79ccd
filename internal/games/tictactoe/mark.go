// Package tictactoe implements a 3x3 tic-tac-toe game with a scrubbable move
// history. The session state (history and current index) lives in Session;
// Board, Cell and Navigator are stateless views that report intents through
// callbacks; Game adapts everything to the terminal platform.
package tictactoe

// Mark is the content of one board square.
type Mark uint8

const (
	Empty Mark = iota
	X          // Moves first, on even history indices
	O
)

// String returns "X", "O" or "" for an empty square.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Other returns the opposing mark. Empty stays Empty.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Symbols maps marks to the characters drawn for them.
type Symbols struct {
	X string
	O string
}

// DefaultSymbols draws marks by their names.
var DefaultSymbols = Symbols{X: "X", O: "O"}

// Of returns the symbol for m, or "" for Empty.
func (s Symbols) Of(m Mark) string {
	switch m {
	case X:
		return s.X
	case O:
		return s.O
	default:
		return ""
	}
}
