package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed value per configuration type so that process-wide
// settings are read from the environment exactly once.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	global = &cache{values: make(map[reflect.Type]any)}

	defaultEnvOnce sync.Once
)

// LoadEnv loads the given .env files into the process environment.
// Variables that are already set are not overridden. With no paths the
// default .env in the working directory is loaded if it exists.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v using `env` struct tags.
//
// The first successful parse of a type is cached; later calls for the same
// type return the cached copy even if the environment changed. A failed parse
// is not cached.
//
//	type ServerConfig struct {
//		Addr   string `env:"HTTP_ADDR" envDefault:":8080"`
//		Secret string `env:"AUTH_SIGNING_SECRET,required,notEmpty"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	global.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for settings without which the process must not start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.values = make(map[reflect.Type]any)
}
