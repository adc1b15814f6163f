package cache

import "math"

// Stats is a point-in-time snapshot of cache effectiveness counters.
// Rates are percentages rounded to two decimal places; both are zero
// until the first Get.
type Stats struct {
	Size        int     `json:"size"`
	HitRate     float64 `json:"hit_rate"`
	MissRate    float64 `json:"miss_rate"`
	TotalHits   uint64  `json:"total_hits"`
	TotalMisses uint64  `json:"total_misses"`
	MemoryUsage int64   `json:"memory_usage"`
	Evictions   uint64  `json:"evictions"`
}

// Stats returns a consistent snapshot of the current counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Stats{
		Size:        len(c.entries),
		TotalHits:   c.hits,
		TotalMisses: c.misses,
		MemoryUsage: c.memUsed,
		Evictions:   c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = round2(float64(c.hits) / float64(total) * 100)
		s.MissRate = round2(float64(c.misses) / float64(total) * 100)
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
