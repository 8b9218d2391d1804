package cache

import "time"

// DefaultExpiration tells Set to use the cache's configured TTL.
const DefaultExpiration time.Duration = 0

// CacheService is a key/value store with per-item expiry.
type CacheService interface {
	// Get returns the value and true if the key is present and not expired.
	Get(key string) (interface{}, bool)

	// Set stores a value; DefaultExpiration uses the cache default TTL.
	Set(key string, value interface{}, duration time.Duration)

	// Delete removes a value from the cache
	Delete(key string)

	// OnEvicted registers fn for expired or deleted items.
	OnEvicted(fn func(key string, value interface{}))

	// Count includes expired items not yet swept.
	Count() int
}
