package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how a configuration struct is loaded.
type Option func(*loadOptions)

type loadOptions struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every env tag of the struct, so
// `env:"PARALLELISM"` with prefix "VALIDATION_" reads VALIDATION_PARALLELISM.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Existing process
// variables take precedence. Missing files are an error.
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) { o.envFiles = append(o.envFiles, files...) }
}

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

// cacheKey identifies a loaded struct. reflect.Type keeps same-named types
// from different packages apart.
type cacheKey struct {
	typ    reflect.Type
	prefix string
}

var (
	cacheMu sync.Mutex
	cache   = make(map[cacheKey]*cacheEntry)

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v based on its field tags.
// Each combination of type and prefix is parsed once; later calls copy the
// cached value. A failed parse is cached as well until Reset is called.
//
// Example:
//
//	type WorkerConfig struct {
//		Parallelism int  `env:"PARALLELISM" envDefault:"4"`
//		Verbose     bool `env:"VERBOSE"`
//	}
//
//	var cfg WorkerConfig
//	if err := config.Load(&cfg, config.WithPrefix("WORKER_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	defaultEnvLoaded.Do(func() {
		// the default .env file is optional
		_ = godotenv.Load()
	})
	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	key := cacheKey{typ: reflect.TypeFor[T](), prefix: o.prefix}

	cacheMu.Lock()
	entry, ok := cache[key]
	if !ok {
		entry = &cacheEntry{}
		cache[key] = entry
	}
	cacheMu.Unlock()

	entry.once.Do(func() {
		var parsed T
		if err := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); err != nil {
			entry.err = errors.Join(ErrParsingConfig, err)
			return
		}
		entry.value = parsed
	})

	if entry.err != nil {
		return entry.err
	}
	cached, ok := entry.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cached
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops every cached configuration. Intended for tests that change the
// process environment between loads.
func Reset() {
	cacheMu.Lock()
	cache = make(map[cacheKey]*cacheEntry)
	cacheMu.Unlock()
}
