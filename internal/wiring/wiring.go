// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/poacpm/poac/internal/adapters/config"
	_ "github.com/poacpm/poac/internal/adapters/fs"
	_ "github.com/poacpm/poac/internal/adapters/lock"
	_ "github.com/poacpm/poac/internal/adapters/logger"
	_ "github.com/poacpm/poac/internal/adapters/manifest"
	_ "github.com/poacpm/poac/internal/adapters/prompt"
	_ "github.com/poacpm/poac/internal/adapters/resolver"
	// Register app and engine nodes.
	_ "github.com/poacpm/poac/internal/app"
	_ "github.com/poacpm/poac/internal/engine/reconciler"
)
