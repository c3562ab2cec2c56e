package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spacebattle/internal/core"
)

// defaultHoldTicks is how long a key press keeps its action held.
// Terminals send no key-up events, only auto-repeated presses, so a held
// direction stays active until repeats stop arriving.
const defaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case " ", "w", "up", "f":
		return core.ActionFire, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "ctrl+s":
		return core.ActionSave, false
	}

	return core.ActionNone, false
}

// HeldKeys turns repeated key presses into level-triggered actions.
type HeldKeys struct {
	ttl  int
	left map[core.Action]int // Ticks each action stays held
}

// NewHeldKeys creates a tracker that holds each press for ttl ticks.
func NewHeldKeys(ttl int) *HeldKeys {
	if ttl <= 0 {
		ttl = defaultHoldTicks
	}
	return &HeldKeys{ttl: ttl, left: make(map[core.Action]int)}
}

// Holdable reports whether an action is level-triggered.
func Holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionFire
}

// Press records a key press. Pressing one direction releases the other.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.left, core.ActionRight)
	case core.ActionRight:
		delete(h.left, core.ActionLeft)
	}
	h.left[a] = h.ttl
}

// Apply sets every held action on the frame and ages the holds by one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
			continue
		}
		h.left[a] = n - 1
	}
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.left)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionResume
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "c":
		return MenuActionResume
	}

	return MenuActionNone
}
