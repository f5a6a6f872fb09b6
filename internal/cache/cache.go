// Package cache holds computed results for a bounded time.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a TTL cache safe for concurrent use. A zero or negative TTL
// disables expiry.
type Cache[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[V]
	now     func() time.Time
}

// New creates an empty cache whose entries expire after ttl.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (c *Cache[V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the value stored under key if it has not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.expired(e) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

// Delete removes key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Purge drops every expired entry and returns how many were removed.
func (c *Cache[V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache[V]) expired(e entry[V]) bool {
	return c.ttl > 0 && c.now().Sub(e.storedAt) >= c.ttl
}

// StartJanitor purges expired entries on a cron schedule (six fields, with
// seconds). onPurge, if non-nil, receives the count of each run. The returned
// function stops the janitor and waits for a running purge to finish.
func (c *Cache[V]) StartJanitor(spec string, onPurge func(removed int)) (stop func(), err error) {
	cr := cron.New(cron.WithSeconds())
	if _, err := cr.AddFunc(spec, func() {
		n := c.Purge()
		if onPurge != nil {
			onPurge(n)
		}
	}); err != nil {
		return nil, fmt.Errorf("register cache janitor: %w", err)
	}
	cr.Start()
	return func() { <-cr.Stop().Done() }, nil
}
