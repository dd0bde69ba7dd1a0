package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sde/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sde/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sde/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sde/internal/adapters/sde"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sde/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
)

// NodeID is the unique identifier for the catalog Graft node.
const NodeID graft.ID = "engine.catalog"

func init() {
	graft.Register(graft.Node[*Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			sde.NodeID,
			progrock.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Catalog, error) {
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			source, err := graft.Dep[ports.RecordSource](ctx)
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

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, source, telemetry, log, cfg), nil
		},
	})
}
