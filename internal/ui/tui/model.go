package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/isaacphi/tirc/internal/config"
	"github.com/isaacphi/tirc/internal/session"
	"github.com/isaacphi/tirc/internal/ui/tui/components/input"
	"github.com/isaacphi/tirc/internal/ui/tui/compose"
	"github.com/isaacphi/tirc/internal/ui/tui/focus"
	"github.com/isaacphi/tirc/internal/ui/tui/keymap"
	"github.com/isaacphi/tirc/internal/ui/tui/layout"
	"github.com/isaacphi/tirc/internal/ui/tui/state"
	"github.com/isaacphi/tirc/internal/ui/tui/theme"
)

// Options configures the shell.
type Options struct {
	ClientName string
	Bindings   keymap.Bindings
	Ratios     layout.Ratios
	Theme      *theme.Theme
	Logger     *slog.Logger
}

// OptionsFromConfig derives the shell options from the loaded config.
func OptionsFromConfig(cfg *config.ConfigSchema, b keymap.Bindings, logger *slog.Logger) Options {
	return Options{
		ClientName: cfg.ClientName,
		Bindings:   b,
		Ratios:     layout.FromConfig(cfg.Layout),
		Theme:      theme.New(cfg.Theme),
		Logger:     logger,
	}
}

// Model is the Bubble Tea model of the chat shell.
type Model struct {
	ctx        context.Context
	state      state.State
	machine    state.Machine
	session    session.Session
	input      input.Model
	theme      *theme.Theme
	ratios     layout.Ratios
	clientName string
	logger     *slog.Logger

	width  int
	height int
}

// New creates the shell model for sess.
func New(ctx context.Context, sess session.Session, opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = theme.DefaultTheme()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if len(opts.Bindings.Quit.Keys()) == 0 {
		opts.Bindings = keymap.DefaultBindings()
	}
	if opts.Ratios == (layout.Ratios{}) {
		opts.Ratios = layout.DefaultRatios()
	}

	return Model{
		ctx:        ctx,
		state:      state.New(),
		machine:    state.NewMachine(opts.Bindings),
		session:    sess,
		input:      input.New(),
		theme:      opts.Theme,
		ratios:     opts.Ratios,
		clientName: opts.ClientName,
		logger:     opts.Logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State returns a copy of the interaction state.
func (m Model) State() state.State {
	return m.state
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		panes := layout.Compute(m.width, m.height, m.ratios)
		m.input.SetWidth(panes.Input.Width - 4) // borders and padding

	case tea.KeyMsg:
		ev := keyEvent(msg)
		before := m.state
		effect := m.machine.Transition(&m.state, ev)

		switch effect {
		case state.EffectText:
			m.input, cmd = m.input.Update(msg)
		case state.EffectSubmit:
			cmd = m.input.Submit()
		}
		focus.Sync(&m.input, m.state.Mode == keymap.InsertMode)

		if m.state != before {
			m.logger.Debug("state changed",
				"key", ev.Key,
				"focus", m.state.Focus.String(),
				"mode", m.state.Mode.String(),
			)
		}
		if m.state.ShouldExit {
			return m, tea.Quit
		}

	case input.InputSubmitMsg:
		channel := m.session.ActiveChannel()
		if err := m.session.Send(m.ctx, channel, msg.Value); err != nil {
			m.logger.Error("failed to send message", "channel", channel, "error", err)
		}
	}

	return m, cmd
}

// content snapshots the session for one frame.
func (m Model) content() compose.Content {
	active := m.session.ActiveChannel()
	return compose.Content{
		Nickname:      m.session.Nickname(),
		ClientName:    m.clientName,
		Channels:      m.session.Channels(),
		ActiveChannel: active,
		Messages:      m.session.Messages(active),
		Draft:         m.input.Value(),
	}
}
