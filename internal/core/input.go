package core

import "maps"

// Action is a game intent decoded from a key press. Games only ever see
// actions, never keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer left (held)
	ActionRight          // D, Right arrow - steer right (held)
	ActionFire           // Space, W, Up arrow - fire the active weapon (held)
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionBack           // B, Escape - leave a paused or finished game
	ActionSave           // Ctrl+S - save the running game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFire:    "Fire",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionBack:    "Back",
	ActionSave:    "Save",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions active during one simulation tick.
// Held actions are set again on every tick they stay held.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	maps.Copy(clone.Actions, f.Actions)
	return clone
}
