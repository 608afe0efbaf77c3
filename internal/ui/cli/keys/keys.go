package keys

import (
	"fmt"
	"os"

	"github.com/isaacphi/tirc/internal/appState"
	"github.com/isaacphi/tirc/internal/ui/tui/components/help"
	"github.com/isaacphi/tirc/internal/ui/tui/keymap"
	"github.com/isaacphi/tirc/internal/ui/tui/theme"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var KeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the effective key bindings of each mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appState.Get().Config
		bindings, err := keymap.NewBindings(cfg.KeyMap)
		if err != nil {
			return fmt.Errorf("invalid key bindings: %w", err)
		}

		h := help.New(theme.New(cfg.Theme))
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			h.SetWidth(width)
		}
		fmt.Fprint(cmd.OutOrStdout(), h.Modes(bindings))
		return nil
	},
}
