package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache memoizes fetched payloads (feed XML, extracted article text) for the
// lifetime of the process. A nil *Cache is valid and caches nothing, which is
// how the disabled state is represented.
type Cache struct {
	store *gocache.Cache
}

// New creates a cache with the given default TTL. Expired entries are swept
// at twice the TTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cache{store: gocache.New(ttl, 2*ttl)}
}

// Get returns the cached value for key, if present and not expired.
func (c *Cache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.store.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key, value string) {
	if c == nil {
		return
	}
	c.store.SetDefault(key, value)
}

// Flush drops all entries.
func (c *Cache) Flush() {
	if c == nil {
		return
	}
	c.store.Flush()
}

// Key builds a stable cache key from its parts.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "paperlens:v1:" + hex.EncodeToString(sum[:])
}
