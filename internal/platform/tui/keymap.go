package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/merrillholt/F1Game/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. The force-quit (ctrl+c)
// and mute (m) keys are platform concerns handled before this mapping and
// never reach the game.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "left", "a":
		return core.ActionLeft
	case "right", "d":
		return core.ActionRight
	case "up", "w":
		return core.ActionUp
	case "down", "s":
		return core.ActionDown
	case "enter", " ":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	case "p":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "q":
		return core.ActionQuit
	case "1":
		return core.ActionDifficulty1
	case "2":
		return core.ActionDifficulty2
	case "3":
		return core.ActionDifficulty3
	}
	return core.ActionNone
}

// MapKeyToFrame records the action for a key press in the input frame.
// Unbound keys leave the frame untouched.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) {
	if a := km.MapKey(msg); a != core.ActionNone {
		frame.Set(a)
	}
}
