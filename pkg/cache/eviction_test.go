package cache_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/socialpanel/cachekit/pkg/cache"
)

func TestCache_CapacityEviction(t *testing.T) {
	t.Run("evicts least recently accessed", func(t *testing.T) {
		c := cache.New[int](cache.WithMaxEntries(2))

		c.Set("a", 1)
		c.Set("b", 2)
		c.Set("c", 3)

		assert.Equal(t, 2, c.Len())
		assert.False(t, c.Has("a"), "a should have been evicted")
		assert.True(t, c.Has("b"))
		assert.True(t, c.Has("c"))
		assert.Equal(t, uint64(1), c.Stats().Evictions)
	})

	t.Run("get protects an entry from eviction", func(t *testing.T) {
		c := cache.New[int](cache.WithMaxEntries(3))

		c.Set("a", 1)
		c.Set("b", 2)
		c.Set("c", 3)

		c.Get("a")
		c.Set("d", 4)

		assert.True(t, c.Has("a"), "a was accessed and should survive")
		assert.False(t, c.Has("b"), "b became the oldest and should be evicted")
		assert.True(t, c.Has("c"))
		assert.True(t, c.Has("d"))
	})

	t.Run("overwrite does not evict", func(t *testing.T) {
		c := cache.New[int](cache.WithMaxEntries(2))

		c.Set("a", 1)
		c.Set("b", 2)
		c.Set("a", 10)

		assert.Equal(t, 2, c.Len())
		assert.Zero(t, c.Stats().Evictions)
	})
}

func TestCache_MemoryEviction(t *testing.T) {
	t.Run("insertion under memory pressure evicts the oldest", func(t *testing.T) {
		c := cache.New[string](
			cache.WithMaxEntries(100),
			cache.WithMaxMemory(1),
		)

		c.Set("a", "first")
		assert.Equal(t, 1, c.Len(), "a lone entry is stored even over budget")

		c.Set("b", "second")
		assert.Equal(t, 1, c.Len())
		assert.False(t, c.Has("a"))
		assert.True(t, c.Has("b"))
		assert.Equal(t, uint64(1), c.Stats().Evictions)
	})

	t.Run("memory usage tracks inserts and removals", func(t *testing.T) {
		c := cache.New[string]()

		assert.Zero(t, c.Stats().MemoryUsage)

		c.Set("a", "payload")
		after := c.Stats().MemoryUsage
		assert.Positive(t, after)

		c.Delete("a")
		assert.Zero(t, c.Stats().MemoryUsage)
	})

	t.Run("overwrite releases the old entry's charge", func(t *testing.T) {
		c := cache.New[string]()

		c.Set("a", "a much longer payload than the replacement")
		before := c.Stats().MemoryUsage

		c.Set("a", "short")
		assert.Less(t, c.Stats().MemoryUsage, before)
	})
}

func TestCache_EvictionCounter(t *testing.T) {
	c := cache.New[int](cache.WithMaxEntries(1))

	for i := 0; i < 50; i++ {
		c.Set(fmt.Sprintf("key:%d", i), i)
	}

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, uint64(49), c.Stats().Evictions)
}
