// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/ly1hex/elua/internal/adapters/config"
	_ "github.com/ly1hex/elua/internal/adapters/depfile"
	_ "github.com/ly1hex/elua/internal/adapters/display"
	_ "github.com/ly1hex/elua/internal/adapters/fingerprint"
	_ "github.com/ly1hex/elua/internal/adapters/logger"
	_ "github.com/ly1hex/elua/internal/adapters/shell"
	_ "github.com/ly1hex/elua/internal/adapters/telemetry"
	_ "github.com/ly1hex/elua/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/ly1hex/elua/internal/app"
	_ "github.com/ly1hex/elua/internal/engine/builder"
)
