// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/arduino2nix/internal/adapters/config"
	_ "go.trai.ch/arduino2nix/internal/adapters/fs"
	_ "go.trai.ch/arduino2nix/internal/adapters/index"
	_ "go.trai.ch/arduino2nix/internal/adapters/logger"
	_ "go.trai.ch/arduino2nix/internal/adapters/nix"
	_ "go.trai.ch/arduino2nix/internal/adapters/shell"
	_ "go.trai.ch/arduino2nix/internal/adapters/sketch"
	_ "go.trai.ch/arduino2nix/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/arduino2nix/internal/app"
)
