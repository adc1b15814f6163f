package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration
// struct based on its `env` field tags. The default .env file is loaded
// once per process before the first parse; a missing .env file is not an
// error.
//
// Each call re-parses the environment, so distinct components can load
// their own config instances independently (and tests can reload after
// mutating the environment).
//
// Example:
//
//	type CacheConfig struct {
//		MaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"1000"`
//		DefaultTTL time.Duration `env:"CACHE_DEFAULT_TTL" envDefault:"5m"`
//	}
//
//	var cfg CacheConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configurations required for the application to start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
