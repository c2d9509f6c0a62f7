package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/birdshot/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	}
	return core.ActionNone
}

// HeldKeys emulates held direction keys. Terminals only report key presses
// (repeated while a key is held down), so a press keeps its direction held
// for a number of ticks. Pressing a direction releases the opposite one.
type HeldKeys struct {
	window int
	left   map[core.Action]int // Ticks each direction stays held
}

// NewHeldKeys creates a tracker that holds a direction for window ticks per press.
func NewHeldKeys(window int) *HeldKeys {
	return &HeldKeys{
		window: core.Max(window, 1),
		left:   make(map[core.Action]int),
	}
}

// Press marks a direction as held. Non-directional actions are ignored.
func (h *HeldKeys) Press(a core.Action) {
	opp := a.Opposite()
	if opp == core.ActionNone {
		return
	}
	h.left[a] = h.window
	delete(h.left, opp)
}

// IsHeld reports whether the direction is currently held.
func (h *HeldKeys) IsHeld(a core.Action) bool {
	return h.left[a] > 0
}

// Apply copies the held directions into the frame snapshot.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for _, a := range core.Directions {
		if h.IsHeld(a) {
			frame.Hold(a)
		}
	}
}

// Tick ages every held direction by one tick.
func (h *HeldKeys) Tick() {
	for a, n := range h.left {
		if n <= 1 {
			delete(h.left, a)
			continue
		}
		h.left[a] = n - 1
	}
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	clear(h.left)
}
