package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/ppiankov/gleaner/internal/model"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a listing title or URL
func Key(s string) string {
	hash := sha256.Sum256([]byte(s))
	return "gleaner:v1:" + hex.EncodeToString(hash[:])
}

// FromConfig builds the cache the configuration asks for: layered
// memory+disk when a directory is set, memory only otherwise, nil when
// caching is disabled.
func FromConfig(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Dir != "" {
		return NewLayeredCache(cfg.TTL, cfg.Dir, cfg.TTL)
	}
	return NewMemoryCache(cfg.TTL, cfg.CleanupInterval)
}
