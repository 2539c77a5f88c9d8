// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/3pl/internal/adapters/cargo"
	_ "go.trai.ch/3pl/internal/adapters/config"
	_ "go.trai.ch/3pl/internal/adapters/fs"
	_ "go.trai.ch/3pl/internal/adapters/logger"
	_ "go.trai.ch/3pl/internal/adapters/render"
	// Register app and engine nodes.
	_ "go.trai.ch/3pl/internal/app"
	_ "go.trai.ch/3pl/internal/engine/resolver"
)
