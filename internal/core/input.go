package core

import "github.com/vovakirdan/tilemerge/internal/engine"

// Action represents a semantic input, abstracted from physical key presses.
// Drivers translate keys into actions; the board only ever sees directions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionRestart        // R key - new board after game over
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a move action to its board direction.
// The second result is false for actions that are not moves.
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case ActionLeft:
		return engine.Left, true
	case ActionRight:
		return engine.Right, true
	case ActionUp:
		return engine.Up, true
	case ActionDown:
		return engine.Down, true
	default:
		return 0, false
	}
}
