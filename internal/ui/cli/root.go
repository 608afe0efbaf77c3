package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/isaacphi/tirc/internal/appState"
	"github.com/isaacphi/tirc/internal/config"
	"github.com/isaacphi/tirc/internal/ui/cli/chat"
	configCmd "github.com/isaacphi/tirc/internal/ui/cli/config"
	"github.com/isaacphi/tirc/internal/ui/cli/keys"
	"github.com/isaacphi/tirc/internal/ui/cli/profile"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
	dbPath   string
)

var rootCmd = &cobra.Command{
	Use:   "tirc <nickname> <host> <port> [description...]",
	Short: "A terminal IRC client",
	Long: `tirc is a modal terminal chat client. Press i to type, esc to leave
insert mode, tab and shift+tab to move between panes and q to quit.`,
	Args:              chat.Args,
	RunE:              chat.RunE,
	DisableAutoGenTag: true,
}

// cleanup releases app resources. Cobra skips post-run hooks when a command
// fails, so it runs after every execution instead.
var cleanup = appState.Cleanup

func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := cleanup(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func init() {
	// Add global flags for logging and storage
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (logs are discarded when unset)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Profile database path")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Initialize app with runtime overrides
		overrides := &config.RuntimeOverrides{}
		if logLevel != "" {
			overrides.LogLevel = &logLevel
		}
		if logFile != "" {
			overrides.LogFile = &logFile
		}
		if dbPath != "" {
			overrides.DBPath = &dbPath
		}
		return appState.Initialize(overrides)
	}

	// Errors are printed once by Execute
	rootCmd.SilenceErrors = true

	// Remove "completions" command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		configCmd.ConfigCmd,
		keys.KeysCmd,
		profile.ProfileCmd,
	)
}
