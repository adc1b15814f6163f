package cache

import (
	"context"
	"regexp"
	"time"

	"github.com/socialpanel/cachekit/pkg/async"
	"github.com/socialpanel/cachekit/pkg/logger"
)

// Loader produces the value for a key during warm-up.
type Loader[V any] func(ctx context.Context, key string) (V, error)

// InvalidatePattern deletes every key matching pattern and returns the
// number of entries removed. It is an unconditional key-based delete:
// TTL state is not consulted, and removals do not count as evictions.
func (c *Cache[V]) InvalidatePattern(pattern *regexp.Regexp) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if pattern.MatchString(key) {
			c.remove(key, e)
			removed++
		}
	}
	return removed
}

// WarmUp concurrently populates every key not already present, invoking
// load once per missing key. Loader failures are isolated: a failed key
// is logged and skipped while the rest of the batch proceeds, so WarmUp
// degrades to cache misses rather than aborting. It returns once every
// key's attempt has settled; the only possible error is the context's,
// when cancellation cut the batch short.
func (c *Cache[V]) WarmUp(ctx context.Context, keys []string, load Loader[V], ttl ...time.Duration) error {
	futures := make([]*async.Future[string], 0, len(keys))
	for _, key := range keys {
		if c.Has(key) {
			continue
		}
		futures = append(futures, async.Go(ctx, key, func(ctx context.Context, k string) (string, error) {
			value, err := load(ctx, k)
			if err != nil {
				return k, err
			}
			c.Set(k, value, ttl...)
			return k, nil
		}))
	}

	for _, out := range async.AwaitAllSettled(futures...) {
		if out.Err != nil {
			c.log.WarnContext(ctx, "cache warm-up loader failed",
				logger.Component("cache"),
				logger.CacheKey(out.Value),
				logger.Error(out.Err),
			)
		}
	}

	return ctx.Err()
}
