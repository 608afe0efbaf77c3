package config

import (
	"fmt"

	"github.com/isaacphi/tirc/internal/config"
	"github.com/spf13/cobra"
)

var (
	includeSources bool

	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "View the merged configuration",
		Long:  "Print the configuration after merging defaults, config files and TIRC_* environment variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := config.DefaultPaths()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg, err := config.Load(paths)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			return cfg.PrintConfig(cmd.OutOrStdout(), includeSources)
		},
	}
)

func init() {
	ConfigCmd.Flags().BoolVarP(&includeSources, "include-sources", "s", false, "Show source file for each configuration value")
}
