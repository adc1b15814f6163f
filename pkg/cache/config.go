package cache

import "time"

// Config carries cache settings loadable from the environment.
type Config struct {
	MaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"1000"`      // MaxEntries is the entry-count budget.
	MaxMemory  int64         `env:"CACHE_MAX_MEMORY_BYTES" envDefault:"52428800"` // MaxMemory is the approximate memory budget in bytes.
	DefaultTTL time.Duration `env:"CACHE_DEFAULT_TTL" envDefault:"5m"`        // DefaultTTL applies when Set is called without a TTL.
}

// NewFromConfig creates a cache from the provided Config.
// Only positive values from the config are applied.
func NewFromConfig[V any](cfg Config, opts ...Option) *Cache[V] {
	configOpts := make([]Option, 0, 3)

	if cfg.MaxEntries > 0 {
		configOpts = append(configOpts, WithMaxEntries(cfg.MaxEntries))
	}
	if cfg.MaxMemory > 0 {
		configOpts = append(configOpts, WithMaxMemory(cfg.MaxMemory))
	}
	if cfg.DefaultTTL > 0 {
		configOpts = append(configOpts, WithDefaultTTL(cfg.DefaultTTL))
	}

	configOpts = append(configOpts, opts...)

	return New[V](configOpts...)
}
