package commands

import (
	"fmt"

	"github.com/poacpm/poac/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			if build.Commit != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "poac version %s (%s)\n", build.Version, build.Commit)
				return
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "poac version %s\n", build.Version)
		},
	}
}
