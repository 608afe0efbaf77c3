package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/tirc/internal/ui/tui/focus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNewIsBlurredAndEmpty(t *testing.T) {
	m := New()
	assert.False(t, m.IsFocused())
	assert.Empty(t, m.Value())
}

func TestFocusSync(t *testing.T) {
	m := New()
	var c focus.FocusableComponent = &m

	focus.Sync(c, true)
	assert.True(t, m.IsFocused())
	focus.Sync(c, false)
	assert.False(t, m.IsFocused())
}

func TestUpdateEditsOnlyWhenFocused(t *testing.T) {
	m := New()
	m = typeText(m, "ignored")
	assert.Empty(t, m.Value())

	m.Focus()
	m = typeText(m, "helo")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = typeText(m, "l")
	assert.Equal(t, "hello", m.Value())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "helo", m.Value())
}

func TestSubmit(t *testing.T) {
	m := New()
	m.Focus()
	m = typeText(m, "hi there")

	cmd := m.Submit()
	require.NotNil(t, cmd)
	assert.Equal(t, InputSubmitMsg{Value: "hi there"}, cmd())
	assert.Empty(t, m.Value())

	m = typeText(m, "   ")
	assert.Nil(t, m.Submit())
	assert.Equal(t, "   ", m.Value())
}
