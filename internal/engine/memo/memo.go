// Package memo implements persistent memoization of expensive computations on top of a cache store.
package memo

import (
	"context"

	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cached returns the value stored under key, running produce and persisting its
// result when no usable entry exists. Producer errors are returned unchanged and
// nothing is stored for them.
func Cached[V any](
	ctx context.Context,
	store ports.CacheStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
	key string,
	produce func(context.Context) (V, error),
) (V, error) {
	return cached(ctx, store, telemetry, logger, key, key, produce)
}

// Load memoizes produce under the key derived from identity.
func Load[V any](
	ctx context.Context,
	store ports.CacheStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
	identity string,
	produce func(context.Context) (V, error),
) (V, error) {
	return cached(ctx, store, telemetry, logger, store.KeyFor(identity), identity, produce)
}

// cached records the lookup under name, which is the identity when one is known.
func cached[V any](
	ctx context.Context,
	store ports.CacheStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
	key, name string,
	produce func(context.Context) (V, error),
) (value V, err error) {
	ctx, vertex := telemetry.Record(ctx, "cache "+name)
	defer func() {
		vertex.Complete(err)
	}()

	var stored V
	found, err := store.Get(key, &stored)
	if err != nil {
		var zero V
		return zero, err
	}
	if found {
		vertex.Cached()
		vertex.Log(domain.LogLevelDebug, "cache hit")
		return stored, nil
	}

	logger.Info("cache miss", "key", key)
	vertex.Log(domain.LogLevelInfo, "cache miss")

	value, err = produce(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	if err = store.Put(key, value); err != nil {
		var zero V
		return zero, zerr.Wrap(err, "failed to persist cache entry")
	}

	return value, nil
}
