package commands

import (
	"github.com/poacpm/poac/internal/adapters/config"
	"github.com/poacpm/poac/internal/app"
	"github.com/poacpm/poac/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall [packages...]",
		Short: "Uninstall packages and the dependencies only they need",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			yes, _ := cmd.Flags().GetBool("yes")

			if len(args) == 0 && !all {
				_ = cmd.Usage()
				return domain.ErrInvalidArguments
			}

			// --all only needs the deps directory, so it also works without a manifest.
			s, err := c.settings(cmd, config.Flags{Yes: yes, ManifestOptional: all})
			if err != nil {
				return err
			}
			return c.app.Uninstall(cmd.Context(), s.Layout, args, app.UninstallOptions{
				All: all,
				Yes: s.AssumeYes,
			})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Uninstall all installed packages")
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	return cmd
}
