package config

// Key binding actions
const (
	KeyActionQuit       = "quit"
	KeyActionInsertMode = "insertMode"
	KeyActionExitInsert = "exitInsert"
	KeyActionFocusNext  = "focusNext"
	KeyActionFocusPrev  = "focusPrev"
	KeyActionSubmit     = "submit"
)

// KeyActions lists every action in the order the help view shows them.
var KeyActions = []string{
	KeyActionQuit,
	KeyActionInsertMode,
	KeyActionExitInsert,
	KeyActionFocusNext,
	KeyActionFocusPrev,
	KeyActionSubmit,
}

type KeyMap struct {
	Quit       []string `mapstructure:"quit" json:"quit" yaml:"quit" validate:"min=1,dive,required" jsonschema:"description=Exit the application (normal mode),default=q"`
	InsertMode []string `mapstructure:"insertMode" json:"insertMode" yaml:"insertMode" validate:"min=1,dive,required" jsonschema:"description=Enter insert mode,default=i"`
	ExitInsert []string `mapstructure:"exitInsert" json:"exitInsert" yaml:"exitInsert" validate:"min=1,dive,required" jsonschema:"description=Return to normal mode,default=esc"`
	FocusNext  []string `mapstructure:"focusNext" json:"focusNext" yaml:"focusNext" validate:"min=1,dive,required" jsonschema:"description=Focus the next pane,default=tab"`
	FocusPrev  []string `mapstructure:"focusPrev" json:"focusPrev" yaml:"focusPrev" validate:"min=1,dive,required" jsonschema:"description=Focus the previous pane,default=shift+tab"`
	Submit     []string `mapstructure:"submit" json:"submit" yaml:"submit" validate:"min=1,dive,required" jsonschema:"description=Send the message being typed,default=enter"`
}

// DefaultKeyMap mirrors defaults.tirc.yaml and is used when no config has
// been loaded, e.g. in tests.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       []string{"q"},
		InsertMode: []string{"i"},
		ExitInsert: []string{"esc"},
		FocusNext:  []string{"tab"},
		FocusPrev:  []string{"shift+tab"},
		Submit:     []string{"enter"},
	}
}

// GetKeys returns the key bindings for an action.
func (k KeyMap) GetKeys(action string) []string {
	switch action {
	case KeyActionQuit:
		return k.Quit
	case KeyActionInsertMode:
		return k.InsertMode
	case KeyActionExitInsert:
		return k.ExitInsert
	case KeyActionFocusNext:
		return k.FocusNext
	case KeyActionFocusPrev:
		return k.FocusPrev
	case KeyActionSubmit:
		return k.Submit
	}
	return nil
}
