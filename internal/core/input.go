package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move paddle left
	ActionRight          // Right arrow, D, L - move paddle right
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionConfirm        // Enter, Space - confirm / start
	ActionQuit           // Q, Ctrl+C, window close - exit game/session
	ActionAnyKey         // Any other key; only meaningful on wait-for-key screens
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionAnyKey:
		return "AnyKey"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It counts every trigger of each action, so repeated key presses between
// ticks are not lost.
type InputFrame struct {
	// Actions maps action types to how many times they fired this frame.
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one trigger of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Any returns true if at least one key arrived this frame.
func (f InputFrame) Any() bool {
	for a, n := range f.Actions {
		if n > 0 && a != ActionNone {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
