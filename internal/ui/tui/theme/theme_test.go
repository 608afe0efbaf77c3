package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBoxDimensions(t *testing.T) {
	thm := DefaultTheme()
	for _, size := range [][2]int{{10, 3}, {40, 12}, {80, 24}} {
		w, h := size[0], size[1]
		box := thm.Box(w, h, false, "[ Channels: 1 ]", "", thm.TitleStyle(false), "#general")
		assert.Equal(t, w, lipgloss.Width(box), "%dx%d", w, h)
		assert.Equal(t, h, lipgloss.Height(box), "%dx%d", w, h)
	}
	assert.Empty(t, thm.Box(1, 5, true, "", "", thm.TitleStyle(true), "x"))
}

func TestBoxBorderEmphasis(t *testing.T) {
	thm := DefaultTheme()
	plain := thm.Box(30, 5, false, "[ alice ]", "[ client ]", thm.TitleStyle(false), "")
	thick := thm.Box(30, 5, true, "[ alice ]", "[ client ]", thm.TitleStyle(true), "")

	assert.True(t, strings.Contains(plain, lipgloss.NormalBorder().TopLeft))
	assert.False(t, strings.Contains(plain, lipgloss.ThickBorder().TopLeft))
	assert.True(t, strings.Contains(thick, lipgloss.ThickBorder().TopLeft))

	for _, box := range []string{plain, thick} {
		assert.Contains(t, box, "[ alice ]")
		assert.Contains(t, box, "[ client ]")
	}
}

func TestTopEdgeTruncatesTitle(t *testing.T) {
	edge := topEdge(6, "-", lipgloss.NewStyle(), "[ a long title ]", "[ sub ]", lipgloss.NewStyle())
	assert.Equal(t, 6, lipgloss.Width(edge))
	assert.NotContains(t, edge, "sub")
}

func TestTopEdgeCentersSubtitle(t *testing.T) {
	edge := topEdge(20, "-", lipgloss.NewStyle(), "[ a ]", "[ b ]", lipgloss.NewStyle())
	assert.Equal(t, "[ a ]--[ b ]--------", edge)
}

func TestNewUsesConfiguredColors(t *testing.T) {
	thm := DefaultTheme()
	assert.Equal(t, lipgloss.Color("240"), thm.Border)
	assert.Equal(t, lipgloss.Color("255"), thm.Emphasis)
	assert.True(t, thm.AuthorStyle.GetBold())
	assert.True(t, thm.TimestampStyle.GetItalic())
	assert.True(t, thm.TitleStyle(true).GetBold())
	assert.False(t, thm.TitleStyle(false).GetBold())
}
