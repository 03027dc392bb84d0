// internal/cache/ttl.go
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// TTLCache is an expiring key-value store. Writes overwrite any live entry
// for the same key; reads of expired entries behave as misses.
type TTLCache interface {
	Set(key, value string, ttl time.Duration)
	Get(key string) (string, bool)
	Delete(key string)
}

type memoryCache struct {
	c *gocache.Cache
}

// NewMemory returns an in-process TTLCache. Expired entries are purged in
// the background at the given cleanup interval.
func NewMemory(cleanupInterval time.Duration) TTLCache {
	return &memoryCache{
		c: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (m *memoryCache) Set(key, value string, ttl time.Duration) {
	m.c.Set(key, value, ttl)
}

func (m *memoryCache) Get(key string) (string, bool) {
	v, found := m.c.Get(key)
	if !found {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (m *memoryCache) Delete(key string) {
	m.c.Delete(key)
}
