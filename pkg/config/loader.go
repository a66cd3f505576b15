package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores one parsed copy per configuration type.
type cache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	globalCache = &cache{values: make(map[string]any)}

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

// Load parses environment variables into v according to its `env` tags.
//
// On first use the default .env file in the working directory is loaded if it
// exists; variables already set in the process take precedence. Each config
// type is parsed once and served from cache afterwards.
//
//	type Settings struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	name := typeName[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[name]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	return parse(name, v)
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses v again, replacing any cached copy.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	return parse(typeName[T](), v)
}

// LoadEnv loads one or more .env files into the process environment. Later
// files override earlier ones; variables set before the call are kept.
// Without arguments the default .env file is loaded.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	values := make(map[string]string)
	for _, p := range paths {
		fileValues, err := godotenv.Read(p)
		if err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", p, err))
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	return setUnset(values)
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

func parse[T any](name string, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.mu.Lock()
	globalCache.values[name] = parsed
	globalCache.mu.Unlock()

	*v = parsed
	return nil
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	if defaultEnvLoaded {
		return
	}
	defaultEnvLoaded = true
	// A missing .env file is not an error.
	_ = godotenv.Load()
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
