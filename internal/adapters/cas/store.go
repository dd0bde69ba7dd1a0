// Package cas implements the persistent memoization cache as one file per key.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"go.trai.ch/sde/internal/core/domain"
	"go.trai.ch/sde/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

const (
	// entryVersion is bumped whenever the envelope layout changes.
	entryVersion = 1

	// tempPattern names in-flight entries; they are never read as entries.
	tempPattern = "entry-*.tmp"

	// staleTempAge is how old a leftover temp file must be before it is swept.
	staleTempAge = time.Hour
)

// entry is the on-disk envelope of a cached value.
type entry struct {
	Version  int             `json:"version"`
	Key      string          `json:"key"`
	Checksum string          `json:"checksum"`
	Value    json.RawMessage `json:"value"`
}

// Store implements ports.CacheStore with one JSON file per key.
type Store struct {
	dir    string
	logger ports.Logger
	sweep  sync.Once
}

// NewStore creates a Store rooted at dir. The directory is created on the first write.
func NewStore(dir string, logger ports.Logger) *Store {
	return &Store{
		dir:    filepath.Clean(dir),
		logger: logger,
	}
}

// Dir returns the directory holding the cache entries.
func (s *Store) Dir() string {
	return s.dir
}

// KeyFor returns the hex SHA-256 digest of identity.
func (s *Store) KeyFor(identity string) string {
	hash := sha256.Sum256([]byte(identity))
	return hex.EncodeToString(hash[:])
}

// Get decodes the entry stored under key into dst.
// Anything short of a complete, checksum-valid entry is a miss.
func (s *Store) Get(key string, dst any) (bool, error) {
	path := s.getFilename(key)

	//nolint:gosec // Path is constructed from the cache directory and a hashed key
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("cache entry unreadable, recomputing", "key", key, "error", err)
		}
		return false, nil
	}

	if err := s.decode(key, data, dst); err != nil {
		s.logger.Warn("cache entry corrupt, recomputing", "key", key, "path", path, "error", err)
		return false, nil
	}

	return true, nil
}

func (s *Store) decode(key string, data []byte, dst any) error {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return zerr.Wrap(domain.ErrCorruptCacheEntry, "failed to unmarshal envelope")
	}

	if e.Version != entryVersion || e.Key != key {
		err := zerr.Wrap(domain.ErrCorruptCacheEntry, "envelope mismatch")
		err = zerr.With(err, "version", e.Version)
		return zerr.With(err, "entry_key", e.Key)
	}

	if sum := checksum(e.Value); sum != e.Checksum {
		err := zerr.Wrap(domain.ErrCorruptCacheEntry, "checksum mismatch")
		err = zerr.With(err, "want", e.Checksum)
		return zerr.With(err, "got", sum)
	}

	if err := json.Unmarshal(e.Value, dst); err != nil {
		return zerr.Wrap(domain.ErrCorruptCacheEntry, "failed to unmarshal value")
	}

	return nil
}

// Put serializes value and writes it under key.
// The entry is written to a temp file and renamed into place, so readers
// never observe a partial entry.
func (s *Store) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrStorageUnwritable, "failed to marshal cache value"), "cause", err.Error())
		return zerr.With(err, "key", key)
	}

	data, err := json.Marshal(entry{
		Version:  entryVersion,
		Key:      key,
		Checksum: checksum(raw),
		Value:    raw,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStorageUnwritable, "failed to marshal envelope"), "key", key)
	}

	s.sweep.Do(s.sweepStaleTemps)

	path := s.getFilename(key)
	if err := writeAtomic(path, data); err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrStorageUnwritable, "failed to store cache entry"), "cause", err.Error())
		err = zerr.With(err, "key", key)
		return zerr.With(err, "path", path)
	}

	s.logger.Debug("cache entry written", "key", key, "size", humanize.Bytes(uint64(len(data))))
	return nil
}

func (s *Store) getFilename(key string) string {
	return filepath.Join(s.dir, key+domain.CacheEntryExt)
}

// sweepStaleTemps removes temp files left behind by writers that died mid-write.
// Recent temp files may belong to a concurrent writer and are left alone.
func (s *Store) sweepStaleTemps() {
	matches, err := filepath.Glob(filepath.Join(s.dir, tempPattern))
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-staleTempAge)
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err == nil {
			s.logger.Debug("removed stale cache temp file", "path", path)
		}
	}
}

// checksum returns the hex xxhash of the serialized value.
func checksum(raw []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(raw))
}

// writeAtomic writes data to a temp file next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	tmpFile, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return zerr.Wrap(err, "failed to create temp cache file")
	}
	tmpName := tmpFile.Name()

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write cache file")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp cache file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod cache file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp cache file")
	}
	renamed = true

	return nil
}
