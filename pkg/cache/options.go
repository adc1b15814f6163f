package cache

import (
	"log/slog"
	"time"
)

type settings struct {
	maxEntries int
	maxMemory  int64
	defaultTTL time.Duration
	logger     *slog.Logger
}

func defaultSettings() *settings {
	return &settings{
		maxEntries: 1000,
		maxMemory:  50 * 1024 * 1024,
		defaultTTL: 5 * time.Minute,
	}
}

// Option configures the cache at construction time.
type Option func(*settings)

// WithMaxEntries sets the entry-count budget.
func WithMaxEntries(n int) Option {
	if n <= 0 {
		panic("cache: WithMaxEntries requires a positive count")
	}
	return func(s *settings) { s.maxEntries = n }
}

// WithMaxMemory sets the approximate memory budget in bytes.
func WithMaxMemory(bytes int64) Option {
	if bytes <= 0 {
		panic("cache: WithMaxMemory requires a positive byte count")
	}
	return func(s *settings) { s.maxMemory = bytes }
}

// WithDefaultTTL sets the TTL applied when Set is called without one.
func WithDefaultTTL(d time.Duration) Option {
	if d <= 0 {
		panic("cache: WithDefaultTTL requires a positive duration")
	}
	return func(s *settings) { s.defaultTTL = d }
}

// WithLogger supplies a logger for warm-up diagnostics.
// If nil or omitted, diagnostics are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// Update carries a partial runtime reconfiguration for Cache.Configure.
// Nil fields keep their current value.
type Update struct {
	MaxEntries *int
	MaxMemory  *int64
	DefaultTTL *time.Duration
}
