package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBoard returns a board whose accepted moves are appended to plays.
func recordingBoard(sq Squares, xIsNext bool, plays *[]Squares) Board {
	return Board{
		Squares: sq,
		XIsNext: xIsNext,
		OnPlay: func(next Squares) {
			*plays = append(*plays, next)
		},
	}
}

func TestBoardClickPlacesNextMark(t *testing.T) {
	var plays []Squares

	recordingBoard(Squares{}, true, &plays).Click(4)
	require.Len(t, plays, 1)
	assert.Equal(t, X, plays[0][4])
	assert.Equal(t, 1, plays[0].Count())

	recordingBoard(plays[0], false, &plays).Click(0)
	require.Len(t, plays, 2)
	assert.Equal(t, O, plays[1][0])
	assert.Equal(t, X, plays[1][4])
}

func TestBoardClickIgnored(t *testing.T) {
	won := Squares{X, X, X, O, O, Empty, Empty, Empty, Empty}

	tests := []struct {
		name    string
		squares Squares
		index   int
	}{
		{"occupied square", Squares{4: X}, 4},
		{"after win", won, 8},
		{"negative index", Squares{}, -1},
		{"index past board", Squares{}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var plays []Squares
			recordingBoard(tt.squares, false, &plays).Click(tt.index)
			assert.Empty(t, plays)
		})
	}
}

func TestBoardClickWithoutHandler(t *testing.T) {
	b := Board{XIsNext: true}
	assert.NotPanics(t, func() { b.Click(0) })
}

func TestBoardCells(t *testing.T) {
	var plays []Squares
	b := recordingBoard(Squares{0: X}, false, &plays)
	cells := b.Cells()

	assert.Equal(t, X, cells[0].Value)
	assert.Equal(t, "X", cells[0].Label(DefaultSymbols))
	assert.Equal(t, " ", cells[1].Label(DefaultSymbols))

	cells[0].Activate()
	assert.Empty(t, plays)

	cells[7].Activate()
	require.Len(t, plays, 1)
	assert.Equal(t, O, plays[0][7])
}

func TestCellActivateWithoutHandler(t *testing.T) {
	assert.NotPanics(t, func() { Cell{}.Activate() })
}

func TestBoardStatus(t *testing.T) {
	tests := []struct {
		name    string
		squares Squares
		xIsNext bool
		want    string
	}{
		{"fresh board", Squares{}, true, "Next player: X"},
		{"O to move", Squares{4: X}, false, "Next player: O"},
		{"X wins", Squares{X, X, X, O, O}, false, "Winner: X"},
		{"O wins", Squares{O, X, X, O, X, Empty, O}, true, "Winner: O"},
		{"draw keeps next player", Squares{X, O, X, X, O, O, O, X, X}, false, "Next player: O"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Board{Squares: tt.squares, XIsNext: tt.xIsNext}
			assert.Equal(t, tt.want, b.Status())
		})
	}
}

func TestBoardStatusWithSymbols(t *testing.T) {
	sym := Symbols{X: "●", O: "○"}

	assert.Equal(t, "Next player: ○", Board{XIsNext: false}.StatusWith(sym))
	assert.Equal(t, "Winner: ●", Board{Squares: Squares{X, X, X}}.StatusWith(sym))
}
