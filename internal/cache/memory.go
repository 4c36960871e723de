package cache

import (
	"context"
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

const (
	DefaultTTL        = time.Hour
	DefaultMaxEntries = 100
)

type memoryEntry struct {
	response *models.WireframeResponse
	storedAt time.Time
}

// MemoryCache is the default backend: process-local, expiry checked on
// read, bounded by evicting the oldest entry on overflow.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) (*models.WireframeResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	return entry.response, true
}

func (c *MemoryCache) Set(ctx context.Context, key string, response *models.WireframeResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{response: response, storedAt: c.now()}

	if len(c.entries) > c.maxEntries {
		c.evictOldest()
	}
}

// evictOldest runs with the lock held.
func (c *MemoryCache) evictOldest() {
	var oldestKey string
	var oldestAt time.Time

	for key, entry := range c.entries {
		if oldestKey == "" || entry.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.storedAt
		}
	}

	delete(c.entries, oldestKey)
}

func (c *MemoryCache) Stats(ctx context.Context) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Provider: "memory",
		Enabled:  true,
		Entries:  len(c.entries),
		TTL:      int(c.ttl.Seconds()),
	}
}
