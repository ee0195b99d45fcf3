// Package cache holds an in-process map of timestamped entries that expire
// after a fixed TTL. Callers own the cache value and pass it where needed.
package cache

import (
	"context"
	"sync"
	"time"

	"email_size_analyzer/internal/domain/models"
)

type entry struct {
	verdict  *models.SizeVerdict
	storedAt time.Time
}

type TTLCache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// New returns a cache keeping entries for ttl. When maxEntries is reached,
// expired entries are purged and, if still full, the oldest entry is evicted.
func New(ttl time.Duration, maxEntries int) *TTLCache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &TTLCache{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *TTLCache) Get(_ context.Context, key string) (*models.SizeVerdict, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if c.expired(e) {
		c.mu.Lock()
		// A Set may have refreshed the key since the read lock was released.
		if cur, ok := c.entries[key]; ok && c.expired(cur) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return e.verdict, true, nil
}

func (c *TTLCache) Set(_ context.Context, key string, verdict *models.SizeVerdict) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = entry{verdict: verdict, storedAt: c.now()}
	return nil
}

func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *TTLCache) expired(e entry) bool {
	return c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl
}

func (c *TTLCache) evictLocked() {
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, k)
			continue
		}
		if oldestKey == "" || e.storedAt.Before(oldest) {
			oldestKey, oldest = k, e.storedAt
		}
	}
	if len(c.entries) >= c.maxEntries && oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
