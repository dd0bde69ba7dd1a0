// Package catalog holds the process-wide view of the dataset: the group
// hierarchy, the item records and the descendant sets computed from them.
package catalog

import (
	"context"
	"path/filepath"
	"sync"

	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
	"go.trai.ch/sde/internal/engine/memo"
	"go.trai.ch/zerr"
)

// Catalog lazily loads dataset records through the persistent cache and keeps
// the derived structures for the lifetime of the process.
// Failed loads are not remembered; the next call retries.
type Catalog struct {
	store     ports.CacheStore
	source    ports.RecordSource
	telemetry ports.Telemetry
	logger    ports.Logger
	cfg       *domain.Config

	mu          sync.Mutex
	index       *domain.GroupIndex
	items       []domain.Item
	descendants map[domain.ID]domain.IDSet
}

// New creates a new Catalog.
func New(
	store ports.CacheStore,
	source ports.RecordSource,
	telemetry ports.Telemetry,
	logger ports.Logger,
	cfg *domain.Config,
) *Catalog {
	return &Catalog{
		store:       store,
		source:      source,
		telemetry:   telemetry,
		logger:      logger,
		cfg:         cfg,
		descendants: make(map[domain.ID]domain.IDSet),
	}
}

// Config returns the configuration the catalog was built with.
func (c *Catalog) Config() *domain.Config {
	return c.cfg
}

// Groups returns the group hierarchy, building it on first use.
func (c *Catalog) Groups(ctx context.Context) (*domain.GroupIndex, error) {
	c.mu.Lock()
	if c.index != nil {
		defer c.mu.Unlock()
		return c.index, nil
	}
	c.mu.Unlock()

	// Loading happens outside the lock so groups and items can warm in parallel.
	records, err := memo.Load(ctx, c.store, c.telemetry, c.logger, c.identity(c.cfg.GroupsFile),
		func(ctx context.Context) ([]domain.GroupNode, error) {
			return c.source.LoadGroups(ctx, c.cfg.GroupsFile)
		})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load market groups")
	}

	index, err := domain.NewGroupIndex(records)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index == nil {
		c.index = index
		c.logger.Debug("group index built", "groups", index.Len())
	}
	return c.index, nil
}

// Items returns the item records, loading them on first use.
func (c *Catalog) Items(ctx context.Context) ([]domain.Item, error) {
	c.mu.Lock()
	if c.items != nil {
		defer c.mu.Unlock()
		return c.items, nil
	}
	c.mu.Unlock()

	items, err := memo.Load(ctx, c.store, c.telemetry, c.logger, c.identity(c.cfg.ItemsFile),
		func(ctx context.Context) ([]domain.Item, error) {
			return c.source.LoadItems(ctx, c.cfg.ItemsFile)
		})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load item types")
	}
	if items == nil {
		items = []domain.Item{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items == nil {
		c.items = items
	}
	return c.items, nil
}

// DescendantsOfRoot returns the ids of every group under root, root included.
// Each root is computed at most once per Catalog.
func (c *Catalog) DescendantsOfRoot(ctx context.Context, root domain.ID) (domain.IDSet, error) {
	index, err := c.Groups(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if set, ok := c.descendants[root]; ok {
		return set, nil
	}

	set, err := index.DescendantsOfRoot(root)
	if err != nil {
		return nil, zerr.With(err, "root_group_id", root.String())
	}
	c.descendants[root] = set
	return set, nil
}

// Ancestors returns the ancestor chain of the given group.
func (c *Catalog) Ancestors(ctx context.Context, id domain.ID) (domain.AncestorChain, error) {
	index, err := c.Groups(ctx)
	if err != nil {
		return nil, err
	}
	return index.AncestorChain(id)
}

// identity names a dataset file for cache key derivation.
func (c *Catalog) identity(file string) string {
	return filepath.ToSlash(filepath.Join(c.cfg.DatasetDir, file))
}
