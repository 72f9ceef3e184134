package cache

import (
	"encoding/json"
	"time"

	"github.com/ppiankov/gleaner/internal/model"
)

// ResultCache stores extraction results keyed by the title or URL they
// came from. A nil ResultCache is a no-op, so callers can use one
// unconditionally.
type ResultCache struct {
	inner Cache
	ttl   time.Duration
}

// NewResultCache wraps a cache. Passing a nil inner cache yields a
// ResultCache that never hits.
func NewResultCache(inner Cache, ttl time.Duration) *ResultCache {
	if inner == nil {
		return nil
	}
	return &ResultCache{inner: inner, ttl: ttl}
}

// Get returns the cached result for the key, if any.
func (c *ResultCache) Get(key string) (*model.Result, bool) {
	if c == nil {
		return nil, false
	}
	data, found := c.inner.Get(Key(key))
	if !found {
		return nil, false
	}
	var res model.Result
	if err := json.Unmarshal(data, &res); err != nil {
		_ = c.inner.Delete(Key(key))
		return nil, false
	}
	return &res, true
}

// Put stores a result under the key.
func (c *ResultCache) Put(key string, res *model.Result) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.inner.Set(Key(key), data, c.ttl)
}
