// Package cache provides a generic, thread-safe in-memory key-value store
// with TTL expiry, budget-driven eviction, and built-in health telemetry.
//
// The cache bounds itself two ways: a maximum entry count and an
// approximate memory budget derived from serialized key/value sizes. When
// an insertion would breach either budget, the least recently accessed
// entries are evicted until the new entry fits. Expiry is lazy: expired
// entries linger until an operation touches their key, at which point
// they are purged and treated as absent.
//
// # Key Features
//
//   - Generic over the value type; keys are strings
//   - Thread-safe operations with mutex-based synchronization
//   - Per-entry TTL with a configurable process-wide default
//   - Approximate-LRU eviction under entry and memory budgets
//   - Hit/miss/eviction statistics and a rule-based health verdict
//   - Pattern invalidation, concurrent warm-up, and read-only traversal
//   - Runtime reconfiguration of budgets and default TTL
//
// # Usage
//
// Create a cache with functional options, or from an env-tagged Config:
//
//	c := cache.New[*Channel](
//	    cache.WithMaxEntries(500),
//	    cache.WithDefaultTTL(10*time.Minute),
//	)
//
//	c.Set("channel:42", ch)
//	ch, ok := c.Get("channel:42")
//
// Existence probes do not distort telemetry:
//
//	if c.Has("channel:42") { … } // no hit/miss counted, recency untouched
//
// # Statistics and Health
//
// Stats returns a snapshot of size, hit/miss rates (percent, two
// decimals), memory usage, and eviction count. Health evaluates fixed
// rules over that snapshot and yields healthy, warning, or critical along
// with the triggered issues and recommendations. Both are read-only and
// deterministic for a given counter state.
//
// # Bulk Operations
//
// InvalidatePattern deletes every key matching a regular expression.
// WarmUp concurrently loads a batch of missing keys through a caller
// supplied Loader; per-key failures are logged and isolated so one bad
// key never aborts the batch. ForEach, Filter, Map, and Reduce observe
// the live values without touching expiry state or statistics.
//
// # Eviction Semantics
//
// Eviction selects the entry with the oldest access sequence, a ticket
// stamped on insertion and on every Get. Budgets are enforced by looping
// until the pending insertion fits, so a single oversized Set may evict
// several entries; each removal increments the eviction counter. Lazy
// expiry purges and explicit deletes are not evictions.
//
// # Memory Accounting
//
// The memory figure is an estimate: serialized key and value sizes plus a
// fixed per-entry overhead. It exists to give the eviction policy a
// consistent pressure signal, not to bound actual process memory.
package cache
