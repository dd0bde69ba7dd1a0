package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sde/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/sde/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sde/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/sde/internal/adapters/sde"                //nolint:depguard // Wired in app layer
	"go.trai.ch/sde/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
	"go.trai.ch/sde/internal/engine/catalog"
	"go.trai.ch/sde/internal/engine/classifier"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			classifier.NodeID,
			sde.OverridesNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cat, err := graft.Dep[*catalog.Catalog](ctx)
	if err != nil {
		return nil, err
	}

	cls, err := graft.Dep[*classifier.Classifier](ctx)
	if err != nil {
		return nil, err
	}

	overrides, err := graft.Dep[ports.OverrideSource](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CacheStore](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cat, cls, overrides, store, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
		Config: cfg,
	}, nil
}
