package ports

// CacheStore is a persistent key to value memoization store.
// Entries are never invalidated; a key maps to the same value until the store is cleared by hand.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// KeyFor derives the cache key of a logical identity, such as a dataset path.
	// The same identity always yields the same key.
	KeyFor(identity string) string

	// Get decodes the entry stored under key into dst.
	// Missing, unreadable or corrupt entries report false with a nil error.
	Get(key string, dst any) (bool, error)

	// Put serializes value and stores it under key.
	Put(key string, value any) error
}
