package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/tirc/internal/ui/tui/compose"
	"github.com/isaacphi/tirc/internal/ui/tui/keymap"
	"github.com/isaacphi/tirc/internal/ui/tui/layout"
)

// View paints the composed regions into the computed layout.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	regions := compose.Compose(m.state, m.content())
	panes := layout.Compute(m.width, m.height, m.ratios)

	channels := m.renderChannels(regions.Channels, panes.Channels)
	messages := m.renderMessages(regions.Messages, panes.Messages)
	inputPane := m.renderInput(regions.Input, panes.Input)

	right := lipgloss.JoinVertical(lipgloss.Left, messages, inputPane)
	return lipgloss.JoinHorizontal(lipgloss.Top, channels, right)
}

// inner returns the writable area of a bordered, padded pane.
func inner(r layout.Rect) (int, int) {
	return max(r.Width-4, 0), max(r.Height-2, 0)
}

func (m Model) renderChannels(r compose.Region, rect layout.Rect) string {
	body := m.theme.BodyStyle(r.TextEmphasis).Render(r.Text)
	return m.theme.Box(rect.Width, rect.Height, r.BorderEmphasis, r.Title, r.Subtitle, m.theme.TitleStyle(r.TitleEmphasis), body)
}

func (m Model) renderMessages(r compose.Region, rect layout.Rect) string {
	w, h := inner(rect)

	var body string
	if len(r.Lines) == 0 {
		body = m.theme.BodyStyle(r.TextEmphasis).Render(r.Text)
	} else {
		body = tail(m.formatLines(r.Lines, w), h)
	}
	return m.theme.Box(rect.Width, rect.Height, r.BorderEmphasis, r.Title, r.Subtitle, m.theme.TitleStyle(r.TitleEmphasis), body)
}

// formatLines styles and wraps every message to width cells.
func (m Model) formatLines(lines []compose.Line, width int) []string {
	wrap := lipgloss.NewStyle().Width(max(width, 1))
	var out []string
	for _, l := range lines {
		styled := m.theme.TimestampStyle.Render(l.Timestamp) + " " +
			m.theme.AuthorStyle.Render(l.Author+":") + " " +
			m.theme.TextStyle.Render(l.Text)
		out = append(out, strings.Split(wrap.Render(styled), "\n")...)
	}
	return out
}

// tail keeps the newest h rows so the latest message stays visible.
func tail(rows []string, h int) string {
	if len(rows) > h {
		rows = rows[len(rows)-h:]
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderInput(r compose.Region, rect layout.Rect) string {
	w, _ := inner(rect)

	var body string
	if m.state.Mode == keymap.InsertMode {
		body = m.input.View()
	} else {
		body = m.theme.BodyStyle(r.TextEmphasis).
			Width(max(w, 1)).
			Align(lipgloss.Center).
			Render(r.Text)
	}
	return m.theme.Box(rect.Width, rect.Height, r.BorderEmphasis, r.Title, r.Subtitle, m.theme.TitleStyle(r.TitleEmphasis), body)
}
