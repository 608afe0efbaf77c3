package chat

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/isaacphi/tirc/internal/appState"
	"github.com/isaacphi/tirc/internal/domain"
	"github.com/isaacphi/tirc/internal/repository/sqlite"
	"github.com/isaacphi/tirc/internal/session"
	"github.com/isaacphi/tirc/internal/ui/tui"
	"github.com/isaacphi/tirc/internal/ui/tui/keymap"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Args checks the argument count before anything touches the terminal.
var Args = cobra.MinimumNArgs(3)

// ParseProfile builds a validated profile from
// <nickname> <host> <port> [description...].
func ParseProfile(args []string) (domain.Profile, error) {
	if len(args) < 3 {
		return domain.Profile{}, fmt.Errorf("expected <nickname> <host> <port>, got %d argument(s)", len(args))
	}

	port, err := strconv.Atoi(args[2])
	if err != nil {
		return domain.Profile{}, fmt.Errorf("invalid port %q: must be a number between 1 and 65535", args[2])
	}

	p := domain.Profile{
		Nickname:    args[0],
		Host:        args[1],
		Port:        port,
		Description: strings.Join(args[3:], " "),
	}
	if err := domain.ValidateProfile(p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

func ensureTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tirc needs an interactive terminal")
	}
	return nil
}

// saveProfile records the profile in the store at dbPath. The store is a
// convenience, so failures are logged and the shell starts anyway.
func saveProfile(ctx context.Context, dbPath string, profile *domain.Profile, logger *slog.Logger) bool {
	repo, err := sqlite.Initialize(dbPath)
	if err != nil {
		logger.Warn("failed to open profile store", "path", dbPath, "error", err)
		return false
	}
	defer repo.Close()

	if err := repo.Touch(ctx, profile); err != nil {
		logger.Warn("failed to save profile", "address", profile.Address(), "error", err)
		return false
	}
	return true
}

// RunE starts the chat shell for the profile given on the command line.
func RunE(cmd *cobra.Command, args []string) error {
	profile, err := ParseProfile(args)
	if err != nil {
		return err
	}
	if err := ensureTerminal(); err != nil {
		return err
	}

	app := appState.Get()
	cfg := app.Config

	bindings, err := keymap.NewBindings(cfg.KeyMap)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}

	saveProfile(cmd.Context(), cfg.DBPath, &profile, app.Logger)

	sess := session.NewLocal(profile.Nickname, cfg.Session.Channels)
	if profile.Description != "" {
		if err := sess.Notice(sess.ActiveChannel(), "*", profile.Description); err != nil {
			app.Logger.Warn("failed to post description", "error", err)
		}
	}

	app.Logger.Info("starting shell",
		"nickname", profile.Nickname,
		"address", profile.Address(),
		"channels", len(cfg.Session.Channels),
	)
	return tui.Run(cmd.Context(), sess, tui.OptionsFromConfig(cfg, bindings, app.Logger))
}
