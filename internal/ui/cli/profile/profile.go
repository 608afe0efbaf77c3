package profile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/isaacphi/tirc/internal/appState"
	"github.com/isaacphi/tirc/internal/domain"
	"github.com/isaacphi/tirc/internal/repository"
	"github.com/isaacphi/tirc/internal/repository/sqlite"
	"github.com/spf13/cobra"
)

var (
	limitFlag int
	forceFlag bool
)

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved connection profiles",
}

func openRepo() (repository.ProfileRepository, error) {
	cfg := appState.Get().Config
	return sqlite.Initialize(cfg.DBPath)
}

var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved profiles, most recently used first",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		profiles, err := repo.List(cmd.Context(), limitFlag)
		if err != nil {
			return fmt.Errorf("failed to list profiles: %w", err)
		}
		return printProfiles(cmd.OutOrStdout(), profiles)
	},
}

func printProfiles(out io.Writer, profiles []domain.Profile) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLast used\tNickname\tAddress\tDescription")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.ID.String()[:8],
			p.LastUsedAt.Format(time.RFC822),
			p.Nickname,
			p.Address(),
			p.Description,
		)
	}
	return w.Flush()
}

// CommandLine returns the arguments that start the shell with p.
func CommandLine(p domain.Profile) string {
	parts := []string{"tirc", p.Nickname, p.Host, strconv.Itoa(p.Port)}
	if p.Description != "" {
		parts = append(parts, p.Description)
	}
	return strings.Join(parts, " ")
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the command line of the most recently used profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		p, err := repo.GetMostRecent(cmd.Context())
		if domain.IsNoProfileError(err) {
			return fmt.Errorf("no profiles saved yet")
		}
		if err != nil {
			return fmt.Errorf("failed to get most recent profile: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), CommandLine(*p))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "rm [profile_id]",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		// Find profile by partial ID
		p, err := repo.FindByPartialID(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to find profile: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "About to delete profile %s:\n", p.ID.String()[:8])
		fmt.Fprintf(out, "Nickname: %s\n", p.Nickname)
		fmt.Fprintf(out, "Address: %s\n", p.Address())
		fmt.Fprintf(out, "Last used: %s\n", p.LastUsedAt.Format(time.RFC822))

		if !forceFlag {
			ok, err := confirm(cmd.InOrStdin(), out)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Operation cancelled")
				return nil
			}
		}

		if err := repo.Delete(cmd.Context(), p); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}

		fmt.Fprintln(out, "Profile deleted successfully")
		return nil
	},
}

func confirm(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "\nAre you sure you want to delete this profile? [y/N] ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read input: %w", err)
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

func init() {
	listCmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "Limit the number of profiles to show (0 for all)")
	deleteCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without confirmation")

	ProfileCmd.AddCommand(listCmd, lastCmd, deleteCmd)
}
