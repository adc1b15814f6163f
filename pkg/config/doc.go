// Package config loads configuration structs from environment variables.
//
// Load parses `env`-tagged struct fields using caarlos0/env, after
// loading the optional .env file (once per process) via godotenv. There
// is no global registry or result cache: every component constructs and
// owns its configuration explicitly, which keeps instances independent
// and tests isolated.
//
// # Usage
//
//	type ServerConfig struct {
//		Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
//		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Load returns ErrNilPointer for a nil destination and wraps parse
// failures with ErrParsingConfig; use errors.Is to distinguish them.
// MustLoad panics on any error, for configuration the process cannot
// start without.
package config
