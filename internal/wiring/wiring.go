// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sde/internal/adapters/cas"
	_ "go.trai.ch/sde/internal/adapters/config"
	_ "go.trai.ch/sde/internal/adapters/logger"
	_ "go.trai.ch/sde/internal/adapters/sde"
	_ "go.trai.ch/sde/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/sde/internal/app"
	_ "go.trai.ch/sde/internal/engine/catalog"
	_ "go.trai.ch/sde/internal/engine/classifier"
)
