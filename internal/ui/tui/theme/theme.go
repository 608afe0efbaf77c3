package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/isaacphi/tirc/internal/config"
)

// Theme defines the semantic colors and styles for the application
type Theme struct {
	// Colors
	Border     lipgloss.Color
	Emphasis   lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Timestamp  lipgloss.Color
	Author     lipgloss.Color
	Background lipgloss.Color

	// Styles
	TimestampStyle lipgloss.Style
	AuthorStyle    lipgloss.Style
	TextStyle      lipgloss.Style
	HelpStyle      lipgloss.Style
}

// DefaultTheme creates a theme with the built-in colors
func DefaultTheme() *Theme {
	return New(config.Theme{
		Border:     "240",
		Emphasis:   "255",
		Text:       "252",
		Muted:      "245",
		Timestamp:  "245",
		Author:     "255",
		Background: "0",
	})
}

// New builds a theme from the theme config section.
func New(cfg config.Theme) *Theme {
	t := &Theme{
		Border:     lipgloss.Color(cfg.Border),
		Emphasis:   lipgloss.Color(cfg.Emphasis),
		Text:       lipgloss.Color(cfg.Text),
		Muted:      lipgloss.Color(cfg.Muted),
		Timestamp:  lipgloss.Color(cfg.Timestamp),
		Author:     lipgloss.Color(cfg.Author),
		Background: lipgloss.Color(cfg.Background),
	}

	t.TimestampStyle = lipgloss.NewStyle().
		Foreground(t.Timestamp).
		Italic(true)

	t.AuthorStyle = lipgloss.NewStyle().
		Foreground(t.Author).
		Bold(true)

	t.TextStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	t.HelpStyle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	return t
}

// BorderFor returns the thick border for emphasized panes.
func BorderFor(emphasis bool) lipgloss.Border {
	if emphasis {
		return lipgloss.ThickBorder()
	}
	return lipgloss.NormalBorder()
}

// TitleStyle styles pane titles.
func (t *Theme) TitleStyle(emphasis bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.Text)
	if emphasis {
		s = s.Foreground(t.Emphasis).Bold(true)
	}
	return s
}

// BodyStyle styles plain pane text such as the channel list and the input
// placeholder.
func (t *Theme) BodyStyle(emphasis bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.Muted)
	if emphasis {
		s = s.Foreground(t.Emphasis).Bold(true)
	}
	return s
}

// Box draws a bordered pane of exactly width x height cells. The title sits
// at the left of the top border and the subtitle in its center. body is
// padded or cut to the inner area.
func (t *Theme) Box(width, height int, emphasis bool, title, subtitle string, titleStyle lipgloss.Style, body string) string {
	if width < 2 || height < 2 {
		return ""
	}
	border := BorderFor(emphasis)
	borderColor := t.Border
	if emphasis {
		borderColor = t.Emphasis
	}
	edge := lipgloss.NewStyle().Foreground(borderColor)

	innerW, innerH := width-2, height-2
	content := lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		MaxWidth(innerW).
		MaxHeight(innerH).
		Padding(0, 1).
		Render(body)

	frame := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(borderColor).
		BorderBackground(t.Background).
		Background(t.Background).
		Render(content)

	top := edge.Render(border.TopLeft) +
		topEdge(innerW, border.Top, edge, title, subtitle, titleStyle) +
		edge.Render(border.TopRight)

	return lipgloss.JoinVertical(lipgloss.Left, top, frame)
}

// topEdge fills width cells with the border rune, overlaying the titles.
// Titles that do not fit are truncated.
func topEdge(width int, fill string, edge lipgloss.Style, title, subtitle string, titleStyle lipgloss.Style) string {
	title = truncate(title, width)
	left := lipgloss.Width(title)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))

	subW := lipgloss.Width(subtitle)
	start := (width - subW) / 2
	if subtitle != "" && start >= left+1 {
		b.WriteString(edge.Render(strings.Repeat(fill, start-left)))
		b.WriteString(titleStyle.Render(subtitle))
		left = start + subW
	}
	b.WriteString(edge.Render(strings.Repeat(fill, max(width-left, 0))))
	return b.String()
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width {
		r = r[:len(r)-1]
	}
	return string(r)
}
