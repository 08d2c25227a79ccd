package tictactoe

// Snapshot captures the observable game state for tests and debugging.
type Snapshot struct {
	Moves         int // Snapshots in history after the empty board
	Index         int // Displayed history index
	Squares       Squares
	Next          Mark
	Winner        Mark
	Full          bool // Board full; the status line does not report draws
	Status        string
	Cursor        int
	HistoryCursor int
	Focus         Focus
	TooSmall      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	board := g.session.Board()
	return Snapshot{
		Moves:         g.session.Len() - 1,
		Index:         g.session.CurrentIndex(),
		Squares:       board.Squares,
		Next:          board.NextMark(),
		Winner:        Winner(board.Squares),
		Full:          board.Squares.Full(),
		Status:        board.StatusWith(g.symbols),
		Cursor:        g.cursor,
		HistoryCursor: g.histCursor,
		Focus:         g.focus,
		TooSmall:      g.layout.tooSmall,
	}
}
