// Package compose turns interaction state and session content into the three
// region descriptors the renderer paints. It has no side effects.
package compose

import (
	"fmt"
	"strings"

	"github.com/isaacphi/tirc/internal/domain"
	"github.com/isaacphi/tirc/internal/ui/tui/focus"
	"github.com/isaacphi/tirc/internal/ui/tui/keymap"
	"github.com/isaacphi/tirc/internal/ui/tui/state"
)

const (
	// MessagePlaceholder is shown in the input pane in normal mode when the
	// draft is empty.
	MessagePlaceholder = "Enter your message..."
	// EmptyMessagesText fills the message pane before anything was said.
	EmptyMessagesText = "No messages yet."
	// ActivePrefix marks the active channel in the channel list.
	ActivePrefix = "> "
	// TimestampFormat is used for every message line.
	TimestampFormat = "15:04:05"
)

// Content is what the session knows. It is rebuilt for every frame.
type Content struct {
	Nickname      string
	ClientName    string
	Channels      []domain.Channel
	ActiveChannel string
	Messages      []domain.ChatMessage
	Draft         string
}

// Line is one formatted message.
type Line struct {
	Timestamp string
	Author    string
	Text      string
}

// Region describes how a single pane should look.
type Region struct {
	Title          string
	Subtitle       string
	BorderEmphasis bool
	TitleEmphasis  bool
	TextEmphasis   bool
	Text           string
	Lines          []Line
}

// Regions holds one descriptor per pane.
type Regions struct {
	Channels Region
	Messages Region
	Input    Region
}

// Compose derives the regions from s and c.
func Compose(s state.State, c Content) Regions {
	normal := s.Mode == keymap.NormalMode
	insert := s.Mode == keymap.InsertMode

	return Regions{
		Channels: channels(normal && s.Focus == focus.Channels, c),
		Messages: messages(normal && s.Focus == focus.Messages, c),
		Input:    input(insert || (normal && s.Focus == focus.Input), normal && s.Focus == focus.Input, normal, c),
	}
}

func channels(emphasis bool, c Content) Region {
	names := make([]string, 0, len(c.Channels))
	for _, ch := range c.Channels {
		if ch.Name == c.ActiveChannel {
			names = append(names, ActivePrefix+ch.Name)
			continue
		}
		names = append(names, ch.Name)
	}
	return Region{
		Title:          fmt.Sprintf("[ Channels: %d ]", len(c.Channels)),
		BorderEmphasis: emphasis,
		TitleEmphasis:  emphasis,
		TextEmphasis:   emphasis,
		Text:           strings.Join(names, "\n"),
	}
}

func messages(emphasis bool, c Content) Region {
	r := Region{
		Title:          fmt.Sprintf("[ %s ]", c.Nickname),
		Subtitle:       fmt.Sprintf("[ %s ]", c.ClientName),
		BorderEmphasis: emphasis,
		TitleEmphasis:  emphasis,
		TextEmphasis:   emphasis,
	}
	if len(c.Messages) == 0 {
		r.Text = EmptyMessagesText
		return r
	}
	r.Lines = make([]Line, 0, len(c.Messages))
	for _, m := range c.Messages {
		r.Lines = append(r.Lines, Line{
			Timestamp: m.Timestamp.Format(TimestampFormat),
			Author:    m.Author,
			Text:      m.Text,
		})
	}
	return r
}

func input(border, text, normal bool, c Content) Region {
	r := Region{
		BorderEmphasis: border,
		TitleEmphasis:  border,
		TextEmphasis:   text,
	}
	// In insert mode the live buffer is drawn instead.
	if normal {
		r.Text = c.Draft
		if r.Text == "" {
			r.Text = MessagePlaceholder
		}
	}
	return r
}

// String renders a line the way the message pane shows it without styling.
func (l Line) String() string {
	return fmt.Sprintf("%s %s: %s", l.Timestamp, l.Author, l.Text)
}
