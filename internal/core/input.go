package core

import "maps"

// Action is a player intent, decoupled from the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionQuit
)

// Directions lists the directional actions in a fixed order.
var Directions = [...]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

var actionNames = [...]string{
	ActionNone:  "None",
	ActionUp:    "Up",
	ActionDown:  "Down",
	ActionLeft:  "Left",
	ActionRight: "Right",
	ActionFire:  "Fire",
	ActionQuit:  "Quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Opposite returns the direction pointing the other way, or ActionNone.
func (a Action) Opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	}
	return ActionNone
}

// InputFrame is everything the player did during one tick.
//
// Actions counts discrete presses: two fire presses in one frame fire two
// beams. Held is the set of direction keys down when the frame was sampled.
type InputFrame struct {
	Actions map[Action]int
	Held    map[Action]bool
}

func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
		Held:    make(map[Action]bool),
	}
}

// Set records one press of a.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

func (f InputFrame) Has(a Action) bool  { return f.Actions[a] > 0 }
func (f InputFrame) Count(a Action) int { return f.Actions[a] }

func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

func (f InputFrame) IsHeld(a Action) bool { return f.Held[a] }

// Clear empties the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	maps.Copy(c.Actions, f.Actions)
	maps.Copy(c.Held, f.Held)
	return c
}
