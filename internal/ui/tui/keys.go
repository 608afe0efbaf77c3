package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/tirc/internal/ui/tui/state"
)

// keyEvent converts a Bubble Tea key message. Bubble Tea only reports key
// presses, so every event is a Press.
func keyEvent(msg tea.KeyMsg) state.KeyEvent {
	ev := state.KeyEvent{
		Key:  msg.String(),
		Kind: state.Press,
	}
	switch msg.Type {
	case tea.KeyRunes:
		ev.Runes = msg.Runes
	case tea.KeySpace:
		ev.Runes = []rune{' '}
	}
	return ev
}
