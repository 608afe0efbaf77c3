package keymap

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/isaacphi/tirc/internal/config"
)

// Mode represents the application's current input mode
type Mode int

const (
	NormalMode Mode = iota
	InsertMode
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case InsertMode:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// Bindings holds one key.Binding per configurable action.
type Bindings struct {
	Quit       key.Binding
	InsertMode key.Binding
	ExitInsert key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	Submit     key.Binding
}

var helpText = map[string]string{
	config.KeyActionQuit:       "quit",
	config.KeyActionInsertMode: "insert mode",
	config.KeyActionExitInsert: "normal mode",
	config.KeyActionFocusNext:  "next pane",
	config.KeyActionFocusPrev:  "previous pane",
	config.KeyActionSubmit:     "send message",
}

func newBinding(km config.KeyMap, action string) key.Binding {
	keys := km.GetKeys(action)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), helpText[action]),
	)
}

// NewBindings builds bindings from the configured key map and rejects maps
// that would make a mode unusable.
func NewBindings(km config.KeyMap) (Bindings, error) {
	b := Bindings{
		Quit:       newBinding(km, config.KeyActionQuit),
		InsertMode: newBinding(km, config.KeyActionInsertMode),
		ExitInsert: newBinding(km, config.KeyActionExitInsert),
		FocusNext:  newBinding(km, config.KeyActionFocusNext),
		FocusPrev:  newBinding(km, config.KeyActionFocusPrev),
		Submit:     newBinding(km, config.KeyActionSubmit),
	}
	if err := validate(km); err != nil {
		return Bindings{}, err
	}
	return b, nil
}

// DefaultBindings returns the bindings of config.DefaultKeyMap.
func DefaultBindings() Bindings {
	b, err := NewBindings(config.DefaultKeyMap())
	if err != nil {
		panic(fmt.Sprintf("default key map is invalid: %v", err))
	}
	return b
}

func validate(km config.KeyMap) error {
	// Commands active in normal mode, plus exitInsert which is active in
	// every mode, must not share keys.
	owner := make(map[string]string)
	claim := func(action string) error {
		for _, k := range km.GetKeys(action) {
			if prev, ok := owner[k]; ok && prev != action {
				return fmt.Errorf("key %q is bound to both %s and %s", k, prev, action)
			}
			owner[k] = action
		}
		return nil
	}
	for _, action := range []string{
		config.KeyActionQuit,
		config.KeyActionInsertMode,
		config.KeyActionExitInsert,
		config.KeyActionFocusNext,
		config.KeyActionFocusPrev,
	} {
		if err := claim(action); err != nil {
			return err
		}
	}

	// In insert mode printable keys are text, so the keys that still act as
	// commands there must not be printable.
	for _, action := range []string{config.KeyActionExitInsert, config.KeyActionSubmit} {
		for _, k := range km.GetKeys(action) {
			if IsPrintableKey(k) {
				return fmt.Errorf("%s cannot be bound to printable key %q", action, k)
			}
		}
	}
	for _, k := range km.Submit {
		for _, exit := range km.ExitInsert {
			if k == exit {
				return fmt.Errorf("key %q is bound to both %s and %s", k, config.KeyActionExitInsert, config.KeyActionSubmit)
			}
		}
	}
	return nil
}

// IsPrintableKey reports whether a key name produces text when typed.
func IsPrintableKey(name string) bool {
	if name == "space" || name == " " {
		return true
	}
	runes := []rune(name)
	return len(runes) == 1 && unicode.IsPrint(runes[0])
}

// KeyMap represents a set of keybindings grouped for the help view
type KeyMap struct {
	Groups map[int][]key.Binding
}

// NewKeyMap creates a new empty keymap
func NewKeyMap() KeyMap {
	return KeyMap{
		Groups: make(map[int][]key.Binding),
	}
}

const (
	SystemGroup = iota
	NavigationGroup
	ActionGroup
)

var groupOrder = []int{SystemGroup, NavigationGroup, ActionGroup}

// Add adds a key binding to the keymap
func (k *KeyMap) Add(group int, binding key.Binding) {
	k.Groups[group] = append(k.Groups[group], binding)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.Groups[SystemGroup]
}

// FullHelp implements help.KeyMap. Empty groups are skipped.
func (k KeyMap) FullHelp() [][]key.Binding {
	result := [][]key.Binding{}
	for _, group := range groupOrder {
		if bindings := k.Groups[group]; len(bindings) > 0 {
			result = append(result, bindings)
		}
	}
	return result
}

// ForMode returns the bindings that act as commands in the given mode.
func (b Bindings) ForMode(mode Mode) KeyMap {
	km := NewKeyMap()
	switch mode {
	case NormalMode:
		km.Add(SystemGroup, b.Quit)
		km.Add(SystemGroup, b.InsertMode)
		km.Add(NavigationGroup, b.FocusNext)
		km.Add(NavigationGroup, b.FocusPrev)
	case InsertMode:
		km.Add(SystemGroup, b.ExitInsert)
		km.Add(ActionGroup, b.Submit)
	}
	return km
}
