package core

// Action is a game intent decoupled from the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move the paddle left
	ActionRight          // D, Right arrow - move the paddle right
	ActionLaunch         // Space, W, Up - launch a held ball
	ActionCheat          // C - toggle cheat mode
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	actionCount
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
	case ActionLaunch:
		return "Launch"
	case ActionCheat:
		return "Cheat"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

func (a Action) bit() uint32 {
	if a <= ActionNone || a >= actionCount {
		return 0
	}
	return 1 << uint(a)
}

// Set marks an action as triggered for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	f.bits |= a.bit()
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.bits&b != 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Actions lists the set actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
