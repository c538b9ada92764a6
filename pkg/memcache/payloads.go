// pkg/memcache/payloads.go
package memcache

import (
	"sync"
	"time"
)

// PayloadCache is a TTL-bounded in-process cache for expensive AI results,
// keyed by a caller-chosen digest.
type PayloadCache struct {
	mu   sync.RWMutex
	data map[string]payloadEntry
}

type payloadEntry struct {
	payload   []byte
	expiresAt time.Time
}

func NewPayloadCache() *PayloadCache {
	return &PayloadCache{data: make(map[string]payloadEntry)}
}

func (c *PayloadCache) Set(key string, payload []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = payloadEntry{payload: payload, expiresAt: time.Now().Add(ttl)}
}

func (c *PayloadCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.payload, true
}

func (c *PayloadCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}
