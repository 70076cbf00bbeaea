// Package main is the entry point for the poac package manager.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/poacpm/poac/cmd/poac/commands"
	"github.com/poacpm/poac/internal/app"
	"github.com/poacpm/poac/internal/core/domain"
	_ "github.com/poacpm/poac/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.Components)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Apply options
	for _, opt := range opts {
		opt(components)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.ConfigLoader, components.Logger)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			components.Logger.Warn("interrupted")
			return 1
		}
		components.Logger.Error(err)
		if errors.Is(err, domain.ErrUninstallFailed) {
			components.Logger.Warn("the project may be partially uninstalled, rerun uninstall to finish")
		}
		return 1
	}
	return 0
}
