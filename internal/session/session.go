// Package session defines what the shell needs from a chat session and
// provides Local, an in-memory session that echoes sent messages back into
// the channel history without any network transport.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/isaacphi/tirc/internal/domain"
	"github.com/pkg/errors"
)

// Session supplies the content the shell renders each frame.
type Session interface {
	Nickname() string
	Channels() []domain.Channel
	ActiveChannel() string
	// Messages returns the ordered history of channel.
	Messages(channel string) []domain.ChatMessage
	Send(ctx context.Context, channel, text string) error
}

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrUnknownChannel = errors.New("unknown channel")
)

// Local is a Session held entirely in memory.
type Local struct {
	mu       sync.RWMutex
	nickname string
	channels []domain.Channel
	history  map[string][]domain.ChatMessage
	now      func() time.Time
}

// NewLocal creates a session for nickname joined to channels. The first
// channel is the active one.
func NewLocal(nickname string, channels []string) *Local {
	l := &Local{
		nickname: nickname,
		history:  make(map[string][]domain.ChatMessage),
		now:      time.Now,
	}
	for _, name := range channels {
		if _, ok := l.history[name]; ok || name == "" {
			continue
		}
		l.channels = append(l.channels, domain.Channel{Name: name})
		l.history[name] = nil
	}
	return l
}

func (l *Local) Nickname() string {
	return l.nickname
}

func (l *Local) Channels() []domain.Channel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.Channel(nil), l.channels...)
}

func (l *Local) ActiveChannel() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.channels) == 0 {
		return ""
	}
	return l.channels[0].Name
}

func (l *Local) Messages(channel string) []domain.ChatMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]domain.ChatMessage(nil), l.history[channel]...)
}

// Send appends text to channel as a message authored by the session's
// nickname.
func (l *Local) Send(ctx context.Context, channel, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	text = strings.TrimRight(text, " \t")
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	history, ok := l.history[channel]
	if !ok {
		return errors.Wrapf(ErrUnknownChannel, "send to %q", channel)
	}
	l.history[channel] = append(history, domain.ChatMessage{
		Timestamp: l.now(),
		Author:    l.nickname,
		Text:      text,
	})
	return nil
}

// Notice appends a message from author to channel, e.g. a status line.
func (l *Local) Notice(channel, author, text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	history, ok := l.history[channel]
	if !ok {
		return errors.Wrapf(ErrUnknownChannel, "notice to %q", channel)
	}
	l.history[channel] = append(history, domain.ChatMessage{
		Timestamp: l.now(),
		Author:    author,
		Text:      text,
	})
	return nil
}
