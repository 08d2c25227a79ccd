package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinnerEmptyBoard(t *testing.T) {
	assert.Equal(t, Empty, Winner(Squares{}))

	_, ok := WinningLine(Squares{})
	assert.False(t, ok)
}

func TestWinnerEveryLine(t *testing.T) {
	for _, m := range []Mark{X, O} {
		for _, line := range Lines {
			var sq Squares
			for _, i := range line {
				sq[i] = m
			}
			assert.Equal(t, m, Winner(sq), "line %v for %s", line, m)

			got, ok := WinningLine(sq)
			assert.True(t, ok)
			assert.Equal(t, line, got)
		}
	}
}

func TestWinnerTopRow(t *testing.T) {
	sq := Squares{X, X, X, O, O, Empty, Empty, Empty, Empty}
	assert.Equal(t, X, Winner(sq))
}

func TestWinnerDraw(t *testing.T) {
	// X O X
	// X O O
	// O X X
	sq := Squares{X, O, X, X, O, O, O, X, X}
	assert.Equal(t, Empty, Winner(sq))
	assert.True(t, sq.Full())
	assert.Equal(t, 9, sq.Count())
}

func TestWinnerMixedLineIsNotWin(t *testing.T) {
	sq := Squares{X, O, X}
	assert.Equal(t, Empty, Winner(sq))
}

func TestSquaresWithCopies(t *testing.T) {
	var sq Squares
	next := sq.With(4, O)

	assert.Equal(t, Empty, sq[4])
	assert.Equal(t, O, next[4])
	assert.Equal(t, 1, next.Count())
	assert.False(t, next.Full())
}

func TestMark(t *testing.T) {
	tests := []struct {
		mark  Mark
		name  string
		other Mark
	}{
		{Empty, "", Empty},
		{X, "X", O},
		{O, "O", X},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.mark.String())
		assert.Equal(t, tt.other, tt.mark.Other())
	}

	sym := Symbols{X: "●", O: "○"}
	assert.Equal(t, "●", sym.Of(X))
	assert.Equal(t, "○", sym.Of(O))
	assert.Equal(t, "", sym.Of(Empty))
}
