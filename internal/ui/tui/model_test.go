package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/tirc/internal/session"
	"github.com/isaacphi/tirc/internal/ui/tui/components/input"
	"github.com/isaacphi/tirc/internal/ui/tui/compose"
	"github.com/isaacphi/tirc/internal/ui/tui/focus"
	"github.com/isaacphi/tirc/internal/ui/tui/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *session.Local) {
	t.Helper()
	sess := session.NewLocal("alice", []string{"#general", "#go"})
	m := New(context.Background(), sess, Options{ClientName: "TUI IRC Client"})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, sess
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tabKey      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTabKey = tea.KeyMsg{Type: tea.KeyShiftTab}
	escKey      = tea.KeyMsg{Type: tea.KeyEsc}
	enterKey    = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestKeyEvent(t *testing.T) {
	ev := keyEvent(runes("q"))
	assert.Equal(t, "q", ev.Key)
	assert.Equal(t, []rune("q"), ev.Runes)

	assert.Equal(t, "shift+tab", keyEvent(shiftTabKey).Key)
	assert.Empty(t, keyEvent(escKey).Runes)
	assert.Equal(t, []rune{' '}, keyEvent(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}).Runes)
}

func TestScenarioQuits(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tabKey)
	assert.Equal(t, focus.Input, m.State().Focus)
	m = send(t, m, tabKey)
	assert.Equal(t, focus.Channels, m.State().Focus)
	m = send(t, m, runes("i"))
	assert.Equal(t, keymap.InsertMode, m.State().Mode)
	m = send(t, m, escKey)
	assert.Equal(t, keymap.NormalMode, m.State().Mode)
	assert.Equal(t, focus.Channels, m.State().Focus)

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, next.(Model).State().ShouldExit)
}

func TestInsertModeEditsAndSends(t *testing.T) {
	m, sess := newTestModel(t)

	m = send(t, m, runes("i"))
	for _, s := range []string{"q", "u", "i", "t"} {
		m = send(t, m, runes(s))
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(t, m, tabKey)
	m = send(t, m, runes("x"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = send(t, m, runes("!"))

	assert.False(t, m.State().ShouldExit)
	assert.Equal(t, focus.Messages, m.State().Focus)
	assert.Equal(t, "quit !", m.input.Value())

	next, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	m = next.(Model)
	assert.Empty(t, m.input.Value())

	submit := cmd()
	assert.Equal(t, input.InputSubmitMsg{Value: "quit !"}, submit)
	m = send(t, m, submit)

	history := sess.Messages("#general")
	require.Len(t, history, 1)
	assert.Equal(t, "alice", history[0].Author)
	assert.Equal(t, "quit !", history[0].Text)
	assert.Contains(t, m.View(), "alice: quit !")
}

func TestNormalModeKeepsDraftVisible(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Contains(t, m.View(), compose.MessagePlaceholder)

	m = send(t, m, runes("i"))
	assert.True(t, m.input.IsFocused())
	assert.NotContains(t, m.View(), compose.MessagePlaceholder)

	m = send(t, m, runes("hey"))
	m = send(t, m, escKey)
	assert.False(t, m.input.IsFocused())
	assert.Contains(t, m.View(), "hey")
	assert.NotContains(t, m.View(), compose.MessagePlaceholder)
}

func TestViewShowsPanes(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "[ Channels: 2 ]")
	assert.Contains(t, view, "> #general")
	assert.Contains(t, view, "#go")
	assert.Contains(t, view, "[ alice ]")
	assert.Contains(t, view, "[ TUI IRC Client ]")
	assert.Contains(t, view, compose.EmptyMessagesText)
	assert.Len(t, strings.Split(view, "\n"), 24)
}

func TestViewBeforeResizeIsEmpty(t *testing.T) {
	sess := session.NewLocal("alice", []string{"#general"})
	m := New(context.Background(), sess, Options{})
	assert.Empty(t, m.View())
}

func TestViewEmphasisFollowsFocus(t *testing.T) {
	m, _ := newTestModel(t)
	thick := "┏"

	lines := strings.Split(m.View(), "\n")
	assert.Contains(t, lines[0], thick, "messages pane focused at start")
	assert.Equal(t, 1, strings.Count(m.View(), thick))

	m = send(t, m, shiftTabKey)
	assert.Equal(t, focus.Channels, m.State().Focus)
	assert.True(t, strings.HasPrefix(strings.Split(m.View(), "\n")[0], thick))
	assert.Equal(t, 1, strings.Count(m.View(), thick))
}
