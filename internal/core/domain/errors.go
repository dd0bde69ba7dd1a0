package domain

import "go.trai.ch/zerr"

var (
	// ErrStorageUnwritable is returned when the cache directory or a cache entry cannot be created or written.
	ErrStorageUnwritable = zerr.New("cache storage unwritable")

	// ErrCorruptCacheEntry marks a cache entry that exists but cannot be decoded.
	// It never reaches callers of the cache; the entry is treated as a miss.
	ErrCorruptCacheEntry = zerr.New("corrupt cache entry")

	// ErrDuplicateID is returned when two group records share the same id.
	ErrDuplicateID = zerr.New("duplicate group id")

	// ErrCycleDetected is returned when following parent pointers revisits a group.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrGroupNotFound is returned when a requested group is not present in the index.
	ErrGroupNotFound = zerr.New("group not found")

	// ErrMissingDisplayName is returned when an item has no display name for the requested locale.
	ErrMissingDisplayName = zerr.New("missing display name")

	// ErrInvalidRecord is returned when a raw record lacks a required field or has a malformed one.
	ErrInvalidRecord = zerr.New("invalid record")

	// ErrSourceReadFailed is returned when a dataset file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read dataset file")

	// ErrSourceParseFailed is returned when a dataset file cannot be parsed.
	ErrSourceParseFailed = zerr.New("failed to parse dataset file")

	// ErrOverridesReadFailed is returned when the override name list cannot be read.
	ErrOverridesReadFailed = zerr.New("failed to read override list")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file parses but holds unusable values.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
