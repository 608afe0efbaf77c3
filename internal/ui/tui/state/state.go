// Package state holds the interaction state of the shell (focused pane, mode
// and the exit flag) and the transition function that mutates it.
package state

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/isaacphi/tirc/internal/ui/tui/focus"
	"github.com/isaacphi/tirc/internal/ui/tui/keymap"
)

// State is owned by the run loop. Renderers receive it by value.
type State struct {
	Focus      focus.Target
	Mode       keymap.Mode
	ShouldExit bool
}

// New returns the startup state: messages focused, normal mode.
func New() State {
	return State{
		Focus: focus.Default,
		Mode:  keymap.NormalMode,
	}
}

// KeyKind distinguishes presses from releases and auto-repeats.
type KeyKind int

const (
	Press KeyKind = iota
	Release
	Repeat
)

// KeyEvent is a single key event as delivered by the terminal driver.
type KeyEvent struct {
	Key   string
	Runes []rune
	Kind  KeyKind
}

// String implements fmt.Stringer so events can be matched with key.Matches.
func (e KeyEvent) String() string {
	return e.Key
}

// Printable reports whether the event carries text.
func (e KeyEvent) Printable() bool {
	if len(e.Runes) == 0 {
		return false
	}
	for _, r := range e.Runes {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// Effect tells the run loop what a transition did with the event.
type Effect int

const (
	// EffectNone means the event was ignored.
	EffectNone Effect = iota
	// EffectCommand means the event was interpreted as a command.
	EffectCommand
	// EffectText means the event belongs to the input buffer.
	EffectText
	// EffectSubmit means the input buffer should be sent.
	EffectSubmit
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectCommand:
		return "command"
	case EffectText:
		return "text"
	case EffectSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// editKeys are non-printable keys that still edit the input buffer.
var editKeys = key.NewBinding(key.WithKeys(
	"backspace", "delete", "left", "right", "home", "end",
	"ctrl+a", "ctrl+e", "ctrl+u", "ctrl+k", "ctrl+w",
))

// Machine applies key events to a State using a set of bindings.
type Machine struct {
	keys keymap.Bindings
}

// NewMachine returns a machine resolving keys through b.
func NewMachine(b keymap.Bindings) Machine {
	return Machine{keys: b}
}

// DefaultMachine uses keymap.DefaultBindings.
func DefaultMachine() Machine {
	return NewMachine(keymap.DefaultBindings())
}

// Bindings returns the bindings the machine resolves keys with.
func (m Machine) Bindings() keymap.Bindings {
	return m.keys
}

// Transition applies ev to s in place. It is total: unknown keys, unknown
// modes and events after exit are no-ops.
func (m Machine) Transition(s *State, ev KeyEvent) Effect {
	if s == nil || s.ShouldExit || ev.Kind != Press {
		return EffectNone
	}

	if key.Matches(ev, m.keys.ExitInsert) {
		s.Mode = keymap.NormalMode
		return EffectCommand
	}

	switch s.Mode {
	case keymap.NormalMode:
		switch {
		case key.Matches(ev, m.keys.Quit):
			s.ShouldExit = true
		case key.Matches(ev, m.keys.InsertMode):
			s.Mode = keymap.InsertMode
		case key.Matches(ev, m.keys.FocusNext):
			s.Focus = focus.Next(s.Focus)
		case key.Matches(ev, m.keys.FocusPrev):
			s.Focus = focus.Prev(s.Focus)
		default:
			return EffectNone
		}
		return EffectCommand

	case keymap.InsertMode:
		switch {
		case key.Matches(ev, m.keys.Submit):
			return EffectSubmit
		case ev.Printable(), key.Matches(ev, editKeys):
			return EffectText
		}
	}
	return EffectNone
}
