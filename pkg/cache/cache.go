package cache

import (
	"log/slog"
	"sync"
	"time"
)

// Cache is a thread-safe in-memory key-value store with per-entry TTL
// expiry and budget-driven eviction. Entries expire lazily: an expired
// entry is purged by the first operation that touches its key, not by a
// background sweeper.
//
// Eviction is approximate-LRU: when an insertion would breach the entry
// or memory budget, the least recently accessed entries are removed until
// the new entry fits.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[V]

	maxEntries int
	maxMemory  int64
	defaultTTL time.Duration

	// seq is the monotonic access clock stamped on inserts and hits.
	seq uint64
	// memUsed is the running sum of entry size estimates.
	memUsed int64

	hits      uint64
	misses    uint64
	evictions uint64

	log *slog.Logger
}

// New creates a cache configured by the supplied options.
// Invalid option values panic to enforce fail-fast initialization.
func New[V any](opts ...Option) *Cache[V] {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Cache[V]{
		entries:    make(map[string]*entry[V]),
		maxEntries: cfg.maxEntries,
		maxMemory:  cfg.maxMemory,
		defaultTTL: cfg.defaultTTL,
		log:        cfg.logger,
	}
}

// Set inserts or overwrites the value under key. An optional TTL overrides
// the configured default; non-positive values fall back to the default.
// When either the entry or the memory budget would be breached, the least
// recently accessed entries are evicted first.
func (c *Cache[V]) Set(key string, value V, ttl ...time.Duration) {
	size := approxSize(key, value)

	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.defaultTTL
	if len(ttl) > 0 && ttl[0] > 0 {
		d = ttl[0]
	}

	// Overwrite discards the old entry outright; its access history does
	// not carry over.
	if old, ok := c.entries[key]; ok {
		c.memUsed -= old.size
		delete(c.entries, key)
	}

	for len(c.entries) > 0 && c.memUsed+size > c.maxMemory {
		c.evictOldest()
	}
	for len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}

	now := time.Now()
	c.seq++
	c.entries[key] = &entry[V]{
		value:          value,
		createdAt:      now,
		ttl:            d,
		lastAccessedAt: now,
		seq:            c.seq,
		size:           size,
	}
	c.memUsed += size
}

// Get retrieves the value under key and marks it as recently used.
// A missing or expired key counts as a miss; expired entries are purged
// on discovery.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return zero, false
	}
	if e.expired(time.Now()) {
		c.remove(key, e)
		c.misses++
		return zero, false
	}

	c.hits++
	e.accessCount++
	e.lastAccessedAt = time.Now()
	c.seq++
	e.seq = c.seq
	return e.value, true
}

// Has reports whether key holds a live entry. Expired entries are purged
// like in Get, but Has is an existence probe: it updates neither the
// hit/miss counters nor the entry's access metadata, so probing does not
// distort the hit rate or the eviction order.
func (c *Cache[V]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	if e.expired(time.Now()) {
		c.remove(key, e)
		return false
	}
	return true
}

// Delete removes the entry under key and reports whether it existed.
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.remove(key, e)
	return true
}

// Clear empties the store and resets all statistics counters.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry[V])
	c.memUsed = 0
	c.seq = 0
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// Len returns the number of stored entries, including any expired entries
// that have not been purged yet.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Configure applies the non-nil fields of u to the running cache.
// Changes affect only subsequent operations: a store already over a newly
// lowered budget shrinks on the next Set, not immediately. Non-positive
// values are ignored.
func (c *Cache[V]) Configure(u Update) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if u.MaxEntries != nil && *u.MaxEntries > 0 {
		c.maxEntries = *u.MaxEntries
	}
	if u.MaxMemory != nil && *u.MaxMemory > 0 {
		c.maxMemory = *u.MaxMemory
	}
	if u.DefaultTTL != nil && *u.DefaultTTL > 0 {
		c.defaultTTL = *u.DefaultTTL
	}
}

// evictOldest removes the entry with the smallest access sequence and
// counts it as an eviction. Must be called with the write lock held.
func (c *Cache[V]) evictOldest() {
	var (
		victimKey string
		victim    *entry[V]
	)
	for key, e := range c.entries {
		if victim == nil || e.seq < victim.seq {
			victimKey = key
			victim = e
		}
	}
	if victim == nil {
		return
	}
	c.remove(victimKey, victim)
	c.evictions++
}

// remove deletes an entry and releases its memory charge.
// Must be called with the write lock held.
func (c *Cache[V]) remove(key string, e *entry[V]) {
	delete(c.entries, key)
	c.memUsed -= e.size
}
