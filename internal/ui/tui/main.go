package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/tirc/internal/session"
)

// Run starts the shell on the alternate screen and blocks until the user
// quits or ctx is cancelled. The terminal is restored on every path.
func Run(ctx context.Context, sess session.Session, opts Options) error {
	p := tea.NewProgram(
		New(ctx, sess, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running chat TUI: %w", err)
	}
	return nil
}
