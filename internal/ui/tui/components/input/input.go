package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputSubmitMsg is emitted when the input is submitted
type InputSubmitMsg struct {
	Value string
}

// Model wraps the line editor holding the draft
type Model struct {
	textInput textinput.Model
}

// New creates a blurred, empty input. The pane shows its own placeholder in
// normal mode, so the editor has none.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Width = 80
	ti.Cursor.SetMode(cursor.CursorStatic)

	return Model{
		textInput: ti,
	}
}

// SetWidth sets the visible width of the editor
func (m *Model) SetWidth(width int) {
	m.textInput.Width = max(width-1, 1) // room for the cursor
}

// Focus focuses the input
func (m *Model) Focus() {
	m.textInput.Focus()
}

// Blur blurs the input
func (m *Model) Blur() {
	m.textInput.Blur()
}

// IsFocused reports whether the editor takes keys
func (m *Model) IsFocused() bool {
	return m.textInput.Focused()
}

// Value returns the current input value
func (m Model) Value() string {
	return m.textInput.Value()
}

// Submit clears the editor and returns a command carrying the draft. Blank
// drafts are kept and yield no command.
func (m *Model) Submit() tea.Cmd {
	value := m.textInput.Value()
	if strings.TrimSpace(value) == "" {
		return nil
	}
	m.textInput.Reset()
	return func() tea.Msg {
		return InputSubmitMsg{Value: value}
	}
}

// Update forwards editing keys to the editor
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// View renders the live buffer with its cursor
func (m Model) View() string {
	return m.textInput.View()
}
