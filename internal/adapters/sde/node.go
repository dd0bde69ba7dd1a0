package sde

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sde/internal/adapters/config"
	"go.trai.ch/sde/internal/adapters/logger"
	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the dataset reader Graft node.
	NodeID graft.ID = "adapter.sde.reader"
	// OverridesNodeID is the unique identifier for the override list reader Graft node.
	OverridesNodeID graft.ID = "adapter.sde.overrides"
)

func init() {
	graft.Register(graft.Node[ports.RecordSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RecordSource, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewReader(cfg.DatasetDir, cfg.Fields, log), nil
		},
	})

	graft.Register(graft.Node[ports.OverrideSource]{
		ID:        OverridesNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OverrideSource, error) {
			return NewOverrideReader(), nil
		},
	})
}
