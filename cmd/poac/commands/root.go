// Package commands implements the CLI commands for the poac package manager.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/poacpm/poac/internal/adapters/config"
	"github.com/poacpm/poac/internal/app"
	"github.com/poacpm/poac/internal/build"
	"github.com/poacpm/poac/internal/core/ports"
	"github.com/spf13/cobra"
)

// jsonSwitcher is implemented by loggers that can change format at runtime.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for poac.
type CLI struct {
	app     *app.App
	loader  *config.Loader
	logger  ports.Logger
	getwd   func() (string, error)
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, loader *config.Loader, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "poac",
		Short:         "A package manager for C++",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("project-dir", "C", "", "Run as if poac was started in this directory")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		loader:  loader,
		logger:  log,
		getwd:   os.Getwd,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newUninstallCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// settings resolves the invocation settings and applies the log format.
// The global flags are filled in from cmd; flags carries the command's own.
func (c *CLI) settings(cmd *cobra.Command, flags config.Flags) (config.Settings, error) {
	cwd, err := c.getwd()
	if err != nil {
		return config.Settings{}, err
	}
	if err := config.LoadDotEnv(cwd); err != nil {
		return config.Settings{}, err
	}

	flags.ProjectDir, _ = cmd.Flags().GetString("project-dir")
	flags.JSON, _ = cmd.Flags().GetBool("json")

	s, err := c.loader.Load(cwd, flags)
	if err != nil {
		return config.Settings{}, err
	}

	if js, ok := c.logger.(jsonSwitcher); ok {
		js.SetJSON(s.JSONLog)
	}
	return s, nil
}

// SetOut sets the output writer of the root command. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
