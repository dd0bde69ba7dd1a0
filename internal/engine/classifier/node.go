package classifier

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sde/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/engine/catalog"
)

// NodeID is the unique identifier for the classifier Graft node.
const NodeID graft.ID = "engine.classifier"

func init() {
	graft.Register(graft.Node[*Classifier]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catalog.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Classifier, error) {
			cat, err := graft.Dep[*catalog.Catalog](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return New(cat, cfg.Fields.ItemName, cfg.Locale), nil
		},
	})
}
