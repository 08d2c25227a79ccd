package tictactoe

import (
	"errors"
	"fmt"
)

// ErrHistoryIndexOutOfRange is returned by JumpTo for indices outside the
// current history.
var ErrHistoryIndexOutOfRange = errors.New("tictactoe: history index out of range")

// Session owns the move history of one game and the index of the snapshot
// being displayed. history[0] is always the empty board.
//
// A Session is driven by a single event loop and is not safe for
// concurrent use.
type Session struct {
	history []Squares
	current int
}

// NewSession returns a session holding only the empty board.
func NewSession() *Session {
	return &Session{
		history: []Squares{{}},
		current: 0,
	}
}

// SubmitMove records next as the move played from the current snapshot.
// Snapshots after the current index are discarded first, so a move made
// after jumping back abandons the old continuation.
func (s *Session) SubmitMove(next Squares) {
	s.history = append(s.history[:s.current+1], next)
	s.current = len(s.history) - 1
}

// JumpTo displays history entry i. History itself is not modified.
// Out-of-range indices are rejected and leave the session unchanged.
func (s *Session) JumpTo(i int) error {
	if i < 0 || i >= len(s.history) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrHistoryIndexOutOfRange, i, len(s.history)-1)
	}
	s.current = i
	return nil
}

// Current returns the displayed snapshot.
func (s *Session) Current() Squares {
	return s.history[s.current]
}

// CurrentIndex returns the index of the displayed snapshot.
func (s *Session) CurrentIndex() int {
	return s.current
}

// Len returns the number of snapshots in history, including the empty board.
func (s *Session) Len() int {
	return len(s.history)
}

// XIsNext reports whether X moves next, which holds on even indices.
func (s *Session) XIsNext() bool {
	return s.current%2 == 0
}

// NextMark returns the mark of the player to move from the displayed snapshot.
func (s *Session) NextMark() Mark {
	if s.XIsNext() {
		return X
	}
	return O
}

// History returns a copy of all snapshots.
func (s *Session) History() []Squares {
	out := make([]Squares, len(s.history))
	copy(out, s.history)
	return out
}

// Board returns a board view of the displayed snapshot whose accepted
// moves are submitted to this session.
func (s *Session) Board() Board {
	return Board{
		Squares: s.Current(),
		XIsNext: s.XIsNext(),
		OnPlay:  s.SubmitMove,
	}
}

// Navigator returns a history view whose activations jump this session.
func (s *Session) Navigator() Navigator {
	return Navigator{
		Entries: NavEntries(s.Len(), s.current),
		OnJump:  s.JumpTo,
	}
}

// NavEntry is one history control.
type NavEntry struct {
	Index   int
	Label   string
	Current bool // Entry for the displayed snapshot
}

// NavEntries builds the controls for a history of length n.
func NavEntries(n, current int) []NavEntry {
	entries := make([]NavEntry, n)
	for k := range entries {
		entries[k] = NavEntry{
			Index:   k,
			Label:   NavLabel(k),
			Current: k == current,
		}
	}
	return entries
}

// NavLabel returns the label of history entry k.
func NavLabel(k int) string {
	if k == 0 {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d", k)
}

// Navigator lists one control per history entry.
type Navigator struct {
	Entries []NavEntry
	OnJump  func(k int) error
}

// Activate reports a click on entry k.
func (n Navigator) Activate(k int) error {
	if n.OnJump == nil {
		return nil
	}
	return n.OnJump(k)
}
