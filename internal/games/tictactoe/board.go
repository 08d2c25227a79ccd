package tictactoe

// Cell renders one square and forwards activations to its owner.
type Cell struct {
	Value   Mark
	OnClick func()
}

// Label returns the text drawn in the cell: blank or the mark symbol.
func (c Cell) Label(sym Symbols) string {
	if c.Value == Empty {
		return " "
	}
	return sym.Of(c.Value)
}

// Activate reports a click on the cell.
func (c Cell) Activate() {
	if c.OnClick != nil {
		c.OnClick()
	}
}

// Board validates moves against a snapshot and reports accepted ones
// through OnPlay. It holds no state of its own.
type Board struct {
	Squares Squares
	XIsNext bool
	OnPlay  func(next Squares)
}

// NextMark returns the mark of the player to move.
func (b Board) NextMark() Mark {
	if b.XIsNext {
		return X
	}
	return O
}

// Click handles an activation of square i. Clicks after a win, on an
// occupied square or outside the board are ignored.
func (b Board) Click(i int) {
	if i < 0 || i >= len(b.Squares) {
		return
	}
	if Winner(b.Squares) != Empty || b.Squares[i] != Empty {
		return
	}
	if b.OnPlay != nil {
		b.OnPlay(b.Squares.With(i, b.NextMark()))
	}
}

// Cells returns the nine cells, each wired to Click with its own index.
func (b Board) Cells() [9]Cell {
	var cells [9]Cell
	for i := range cells {
		i := i
		cells[i] = Cell{
			Value:   b.Squares[i],
			OnClick: func() { b.Click(i) },
		}
	}
	return cells
}

// Status returns the status line using the default symbols.
func (b Board) Status() string {
	return b.StatusWith(DefaultSymbols)
}

// StatusWith returns "Winner: <mark>" once a line is complete and
// "Next player: <mark>" otherwise, including on a drawn board.
func (b Board) StatusWith(sym Symbols) string {
	if w := Winner(b.Squares); w != Empty {
		return "Winner: " + sym.Of(w)
	}
	return "Next player: " + sym.Of(b.NextMark())
}
