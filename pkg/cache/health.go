package cache

// Health rule thresholds.
const (
	lowHitRatePercent   = 70.0
	memoryPressureRatio = 0.8
	evictionAlertCount  = 100
)

// Status classifies overall cache health.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Health is a rule-based verdict derived from the current statistics.
// It is a pure function of the counters and configuration: the same
// inputs always produce the same verdict.
type Health struct {
	Status          Status   `json:"status"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// Health evaluates the health rules against a stats snapshot.
// The hit-rate rule only applies once at least one Get has occurred;
// an untouched cache is not unhealthy.
func (c *Cache[V]) Health() Health {
	c.mu.RLock()
	maxMemory := c.maxMemory
	c.mu.RUnlock()

	s := c.Stats()

	issues := []string{}
	recommendations := []string{}

	if s.TotalHits+s.TotalMisses > 0 && s.HitRate < lowHitRatePercent {
		issues = append(issues, "Low cache hit rate")
		recommendations = append(recommendations, "Increase cache size or extend TTL")
	}
	if float64(s.MemoryUsage) > memoryPressureRatio*float64(maxMemory) {
		issues = append(issues, "High memory usage")
		recommendations = append(recommendations, "Reduce cache size or shorten TTL")
	}
	if s.Evictions > evictionAlertCount {
		issues = append(issues, "High eviction rate")
		recommendations = append(recommendations, "Increase entry or memory budget")
	}

	status := StatusHealthy
	switch {
	case len(issues) > 2:
		status = StatusCritical
	case len(issues) > 0:
		status = StatusWarning
	}

	return Health{
		Status:          status,
		Issues:          issues,
		Recommendations: recommendations,
	}
}
