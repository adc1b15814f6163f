package cache

import "time"

// Traversal helpers are pure observers over the live (unexpired) values.
// They never purge expired entries, update access metadata, or touch the
// hit/miss counters. Callbacks run with an internal read lock held and
// must not call back into the cache.

// ForEach calls fn for every live key/value pair.
func (c *Cache[V]) ForEach(fn func(key string, value V)) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	for key, e := range c.entries {
		if e.expired(now) {
			continue
		}
		fn(key, e.value)
	}
}

// Filter returns the live values for which keep returns true.
func (c *Cache[V]) Filter(keep func(value V) bool) []V {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	out := make([]V, 0, len(c.entries))
	for _, e := range c.entries {
		if e.expired(now) {
			continue
		}
		if keep(e.value) {
			out = append(out, e.value)
		}
	}
	return out
}

// Map applies fn to every live value and collects the results.
// It is a package-level function because Go methods cannot introduce
// additional type parameters.
func Map[V any, U any](c *Cache[V], fn func(value V) U) []U {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	out := make([]U, 0, len(c.entries))
	for _, e := range c.entries {
		if e.expired(now) {
			continue
		}
		out = append(out, fn(e.value))
	}
	return out
}

// Reduce folds fn over every live value, starting from acc.
func Reduce[V any, A any](c *Cache[V], acc A, fn func(acc A, value V) A) A {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	for _, e := range c.entries {
		if e.expired(now) {
			continue
		}
		acc = fn(acc, e.value)
	}
	return acc
}
