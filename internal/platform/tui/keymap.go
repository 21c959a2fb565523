package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-danmaku/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last key event.
// Terminals report presses and auto-repeats but never releases, so a key is
// released when its repeats stop arriving.
const DefaultHoldWindow = 200 * time.Millisecond

// KeyMap translates Bubble Tea key messages to game actions.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Shoot   key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Quit    key.Binding

	// Screenshot is handled by the platform and maps to no game action.
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings: arrows or WASD to move, space to shoot.
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
		Shoot: key.NewBinding(
			key.WithKeys(" ", "z"),
			key.WithHelp("space", "shoot / start"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shoot, k.Pause, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Shoot, k.Pause, k.Confirm, k.Quit},
	}
}

// Action returns the action bound to msg, or ActionNone.
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
	case key.Matches(msg, k.Shoot):
		return core.ActionShoot
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// heldKeys turns a stream of key events into per-frame input.
// A key event for an action that is not currently held is a press; repeats
// inside the window only keep the action held.
type heldKeys struct {
	window  time.Duration
	seen    map[core.Action]time.Time
	pressed map[core.Action]bool
}

func newHeldKeys(window time.Duration) *heldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &heldKeys{
		window:  window,
		seen:    make(map[core.Action]time.Time),
		pressed: make(map[core.Action]bool),
	}
}

func (h *heldKeys) press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !h.isHeld(a, now) {
		h.pressed[a] = true
	}
	h.seen[a] = now
}

func (h *heldKeys) isHeld(a core.Action, now time.Time) bool {
	last, ok := h.seen[a]
	return ok && now.Sub(last) <= h.window
}

// frame builds the input for the frame ending at now and forgets the presses.
func (h *heldKeys) frame(now time.Time, elapsed time.Duration) core.InputFrame {
	in := core.NewInputFrame()
	in.Elapsed = elapsed
	for a := range h.pressed {
		in.Set(a)
	}
	for a := range h.seen {
		if h.isHeld(a, now) {
			in.Hold(a)
		} else {
			delete(h.seen, a)
		}
	}
	clear(h.pressed)
	return in
}

// reset drops every press and held key.
func (h *heldKeys) reset() {
	clear(h.seen)
	clear(h.pressed)
}
