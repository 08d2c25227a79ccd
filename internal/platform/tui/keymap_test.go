package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"k", runeKey('k'), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionFocus},
		{"[", runeKey('['), core.ActionHistoryBack},
		{"]", runeKey(']'), core.ActionHistoryNext},
		{"r", runeKey('r'), core.ActionRestart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			if keys.MapKeyToFrame(tt.msg, &frame) {
				t.Fatal("unexpected quit")
			}
			if !frame.Has(tt.want) {
				t.Errorf("frame missing %v, got %v", tt.want, frame.Actions)
			}
			if len(frame.Actions) != 1 {
				t.Errorf("expected exactly one action, got %v", frame.Actions)
			}
		})
	}
}

func TestMapKeyToFrameQuit(t *testing.T) {
	keys := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		frame := core.NewInputFrame()
		if !keys.MapKeyToFrame(msg, &frame) {
			t.Errorf("%q should quit", msg.String())
		}
		if !frame.Empty() {
			t.Errorf("quit should not set actions, got %v", frame.Actions)
		}
	}
}

func TestMapKeyToFrameUnbound(t *testing.T) {
	frame := core.NewInputFrame()
	if DefaultKeyMap().MapKeyToFrame(runeKey('z'), &frame) {
		t.Fatal("unexpected quit")
	}
	if !frame.Empty() {
		t.Errorf("expected empty frame, got %v", frame.Actions)
	}
}
