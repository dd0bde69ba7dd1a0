// Package app implements the application layer for sde.
package app

import (
	"context"
	"io"
	"strings"

	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
	"go.trai.ch/sde/internal/engine/catalog"
	"go.trai.ch/sde/internal/engine/classifier"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	catalog    *catalog.Catalog
	classifier *classifier.Classifier
	overrides  ports.OverrideSource
	store      ports.CacheStore
	telemetry  ports.Telemetry
	logger     ports.Logger
	report     io.Writer
}

// New creates a new App instance.
func New(
	cat *catalog.Catalog,
	cls *classifier.Classifier,
	overrides ports.OverrideSource,
	store ports.CacheStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		catalog:    cat,
		classifier: cls,
		overrides:  overrides,
		store:      store,
		telemetry:  telemetry,
		logger:     log,
	}
}

// WithReport makes Close write the cache lookup report to w.
func (a *App) WithReport(w io.Writer) *App {
	a.report = w
	return a
}

// RunOptions configuration for the Classify method.
type RunOptions struct {
	// RootID overrides the configured root group when set.
	RootID *domain.ID
	// SkipOverrides leaves the override list out of the result.
	SkipOverrides bool
}

// Classify returns the names of every item under the root group, preceded by the overrides.
func (a *App) Classify(ctx context.Context, opts RunOptions) (*domain.ClassificationResult, error) {
	cfg := a.catalog.Config()

	root := cfg.RootGroupID
	if opts.RootID != nil {
		root = *opts.RootID
	}

	// Groups and items are independent cache keys.
	var items []domain.Item
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := a.catalog.Groups(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = a.catalog.Items(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var overrides []string
	if !opts.SkipOverrides {
		var err error
		overrides, err = a.overrides.LoadOverrides(ctx, cfg.OverridesFile)
		if err != nil {
			return nil, err
		}
	}

	result, err := a.classifier.Classify(ctx, root, items, overrides)
	if err != nil {
		return nil, zerr.Wrap(err, "classification failed")
	}

	a.logger.Debug("classified items",
		"root", root.String(),
		"groups", result.GroupIDs.Len(),
		"names", len(result.Names),
		"overrides", len(overrides),
	)
	return result, nil
}

// Exists reports whether name is among the classified names of the configured root.
func (a *App) Exists(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, nil
	}
	result, err := a.Classify(ctx, RunOptions{})
	if err != nil {
		return false, err
	}
	return result.Contains(name), nil
}

// Ancestors returns the ancestor chain of the given group.
func (a *App) Ancestors(ctx context.Context, id domain.ID) (domain.AncestorChain, error) {
	return a.catalog.Ancestors(ctx, id)
}

// CacheKey returns the cache key derived from identity.
func (a *App) CacheKey(identity string) string {
	return a.store.KeyFor(identity)
}

// Close writes the cache lookup report, if enabled, and flushes the telemetry session.
func (a *App) Close() error {
	if a.report != nil {
		if err := a.telemetry.Report(a.report); err != nil {
			return zerr.Wrap(err, "failed to write cache report")
		}
	}
	return a.telemetry.Close()
}
