package tictactoe

// Squares is a snapshot of all nine board positions in row-major order:
// Squares[3*row + col]. It is a value type; moves produce new snapshots.
type Squares [9]Mark

// Lines lists the eight winning triples: rows, columns, then diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// With returns a copy of sq with square i set to m.
func (sq Squares) With(i int, m Mark) Squares {
	sq[i] = m
	return sq
}

// Full reports whether every square is occupied.
func (sq Squares) Full() bool {
	for _, m := range sq {
		if m == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of occupied squares.
func (sq Squares) Count() int {
	n := 0
	for _, m := range sq {
		if m != Empty {
			n++
		}
	}
	return n
}

// Winner returns the mark that owns a complete line, or Empty.
// A full board without a line is a draw and also yields Empty.
func Winner(sq Squares) Mark {
	if line, ok := WinningLine(sq); ok {
		return sq[line[0]]
	}
	return Empty
}

// WinningLine returns the first complete line in Lines order.
func WinningLine(sq Squares) ([3]int, bool) {
	for _, line := range Lines {
		a, b, c := sq[line[0]], sq[line[1]], sq[line[2]]
		if a != Empty && a == b && b == c {
			return line, true
		}
	}
	return [3]int{}, false
}
