package cache

import (
	"encoding/json"
	"time"
)

// entryOverhead approximates the fixed bookkeeping cost of one entry:
// map bucket slot, entry struct fields, and key header.
const entryOverhead = 64

// fallbackValueSize is charged for values that cannot be serialized
// (channels, functions, cyclic structures).
const fallbackValueSize = 512

type entry[V any] struct {
	value          V
	createdAt      time.Time
	ttl            time.Duration
	accessCount    uint64
	lastAccessedAt time.Time

	// seq is a cache-wide monotonic counter stamped on insertion and on
	// every Get. Wall-clock lastAccessedAt cannot break ties between
	// entries touched within the same tick, so eviction orders by seq.
	seq uint64

	// size is the approximate memory cost charged against the memory
	// budget, fixed at insertion time.
	size int64
}

func (e *entry[V]) expired(now time.Time) bool {
	return now.Sub(e.createdAt) > e.ttl
}

// approxSize estimates the memory cost of a key/value pair from their
// serialized sizes plus a fixed per-entry overhead. The estimate is
// best-effort: what matters is that the eviction policy has a consistent
// signal, not byte-exact accounting.
func approxSize[V any](key string, value V) int64 {
	size := int64(len(key)) + entryOverhead
	if b, err := json.Marshal(value); err == nil {
		size += int64(len(b))
	} else {
		size += fallbackValueSize
	}
	return size
}
