package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sumfall/internal/core"
	"github.com/vovakirdan/sumfall/internal/games/sumfall"
)

// KeyMapper translates Bubble Tea key messages to semantic actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a play action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "left", "a", "h":
		return core.ActionLeft
	case "right", "d", "l":
		return core.ActionRight
	case "down", "s", "j":
		return core.ActionDown
	case " ", "p":
		return core.ActionPause
	case "ctrl+s":
		return core.ActionSave
	case "r":
		return core.ActionRestart
	case "esc", "b":
		return core.ActionBack
	case "enter":
		return core.ActionConfirm
	}
	return core.ActionNone
}

// SessionCommand maps a play action to a session command.
func SessionCommand(a core.Action) (sumfall.Command, bool) {
	switch a {
	case core.ActionLeft:
		return sumfall.CmdLeft, true
	case core.ActionRight:
		return sumfall.CmdRight, true
	case core.ActionDown:
		return sumfall.CmdDown, true
	case core.ActionPause:
		return sumfall.CmdTogglePause, true
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
