package core

// Action represents a semantic host action, abstracted from physical key
// presses, pointer clicks or touches.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, W, Up, left click - primary activation
	ActionConfirm        // Enter - start from the title screen or restart after game over
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
