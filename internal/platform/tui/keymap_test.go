package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/merrillholt/F1Game/internal/core"
)

// keyMsg builds a key message for the given key name.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{"enter", core.ActionConfirm},
		{" ", core.ActionConfirm},
		{"esc", core.ActionBack},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"1", core.ActionDifficulty1},
		{"2", core.ActionDifficulty2},
		{"3", core.ActionDifficulty3},
		{"x", core.ActionNone},
		{"z", core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("a"), &frame)
	km.MapKeyToFrame(keyMsg("p"), &frame)

	if !frame.Has(core.ActionLeft) {
		t.Error("Expected ActionLeft in frame")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("Expected ActionPause in frame")
	}
	if frame.Has(core.ActionRight) {
		t.Error("Unexpected ActionRight in frame")
	}
}

func TestMapKeyToFrameIgnoresUnbound(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(keyMsg("x"), &frame)

	if len(frame.Actions) != 0 {
		t.Errorf("Expected empty frame, got %v", frame.Actions)
	}
}
