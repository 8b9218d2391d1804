package cache

import (
	"lunaloops-storefront/pkg/cache"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache service
// defaultExpiration: TTL applied by cache.DefaultExpiration
// cleanupInterval: how often expired items are swept (and evicted callbacks fire)
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) cache.CacheService {
	return &memoryCache{
		store: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *memoryCache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *memoryCache) Set(key string, value interface{}, duration time.Duration) {
	if duration == cache.DefaultExpiration {
		duration = gocache.DefaultExpiration
	}
	c.store.Set(key, value, duration)
}

func (c *memoryCache) Delete(key string) {
	c.store.Delete(key)
}

func (c *memoryCache) OnEvicted(fn func(key string, value interface{})) {
	c.store.OnEvicted(fn)
}

func (c *memoryCache) Count() int {
	return c.store.ItemCount()
}
