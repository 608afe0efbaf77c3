package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/isaacphi/tirc/internal/ui/tui/keymap"
	"github.com/isaacphi/tirc/internal/ui/tui/theme"
)

// Model renders key bindings with the bubbles help view
type Model struct {
	help  help.Model
	theme *theme.Theme
}

// New creates a new help model
func New(thm *theme.Theme) Model {
	return Model{
		help:  help.New(),
		theme: thm,
	}
}

// SetWidth truncates the help to width cells. Zero disables truncation.
func (m *Model) SetWidth(width int) {
	m.help.Width = width
}

// FullHelp returns a full view of the keybindings
func (m Model) FullHelp(km keymap.KeyMap) string {
	m.help.ShowAll = true
	return m.help.View(km)
}

// Modes renders the full help of every mode under a heading.
func (m Model) Modes(b keymap.Bindings) string {
	var sb strings.Builder
	for i, mode := range []keymap.Mode{keymap.NormalMode, keymap.InsertMode} {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(mode.String())
		sb.WriteString("\n")
		sb.WriteString(m.theme.HelpStyle.Render(m.FullHelp(b.ForMode(mode))))
	}
	sb.WriteString("\n")
	return sb.String()
}
