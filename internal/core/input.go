package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow - shift the falling piece left
	ActionRight          // D, L, Right arrow - shift the falling piece right
	ActionDown           // S, J, Down arrow - soft drop one row
	ActionUp             // W, K, Up arrow - menu navigation
	ActionPause          // Space, P - pause/unpause
	ActionSave           // Ctrl+S - write the game to the save slot
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - back to menu
	ActionRestart        // R - new game after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionUp:
		return "Up"
	case ActionPause:
		return "Pause"
	case ActionSave:
		return "Save"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
