package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu     sync.Mutex
	loaded = make(map[string]any)
)

// Load parses environment variables into the provided configuration
// struct based on `env` field tags. Each configuration type is parsed at
// most once per process; later calls for the same type return the cached
// value, so every consumer of a config type observes identical settings.
//
// A .env file in the working directory is loaded once before the first
// parse; its absence is not an error.
//
// Example:
//
//	type LogConfig struct {
//		Level  string `env:"LOG_LEVEL" envDefault:"info"`
//		Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]().String()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Store a copy so later mutations of *v don't leak into the cache.
	loaded[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure. Use it for
// configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
