package domain

import "path/filepath"

const (
	// SdeDirName is the name of the internal workspace directory.
	SdeDirName = ".sde"

	// CacheDirName is the name of the memoization cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the configuration file looked up in the working directory.
	ConfigFileName = "sde.yaml"

	// CacheEntryExt is the file extension of a cache entry.
	CacheEntryExt = ".json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default path for the memoization cache.
// It joins .sde and cache.
func DefaultCachePath() string {
	return filepath.Join(SdeDirName, CacheDirName)
}
