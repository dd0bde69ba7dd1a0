package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sde/internal/adapters/config"
	"go.trai.ch/sde/internal/adapters/logger"
	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
)

// NodeID is the unique identifier for the cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewStore(cfg.CacheDir, log), nil
		},
	})
}
