package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration values keyed by type and prefix.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// Option configures a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix string
}

// WithPrefix prepends prefix to every variable name of the struct, so
// `env:"MAX_PATH_LENGTH"` is read from SIGNALFORGE_MAX_PATH_LENGTH when the
// prefix is "SIGNALFORGE_". Values loaded with different prefixes are cached
// separately.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.prefix = prefix
	}
}

// Load parses environment variables into v. The default .env file is read
// once per process; a missing file is not an error.
//
// Each configuration type is parsed once per prefix. Later calls copy the
// cached value into v.
//
// Example:
//
//	var cfg validator.Config
//	if err := config.Load(&cfg, config.WithPrefix("SIGNALFORGE_")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	key := cacheKey[T](o.prefix)

	if cached, ok := globalCache.get(key); ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[key]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := parse(v, o); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			globalCache.forget(key)
			return
		}
		globalCache.mu.Lock()
		globalCache.values[key] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if cached, ok := globalCache.get(key); ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// Reload drops the cached value for T and the given prefix and parses the
// environment again.
func Reload[T any](v *T, opts ...Option) error {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	key := cacheKey[T](o.prefix)

	globalCache.mu.Lock()
	delete(globalCache.values, key)
	globalCache.mu.Unlock()
	globalCache.forget(key)

	return Load(v, opts...)
}

// LoadEnv reads the given .env files into the process environment. Without
// arguments it reads ./.env. Variables already set are not overwritten.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env file: %v", err))
	}
}

// ResetCache drops every cached configuration value.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
	globalCache.mu.Unlock()
}

func parse[T any](v *T, o loadOptions) error {
	return env.ParseWithOptions(v, env.Options{Prefix: o.prefix})
}

func (c *configCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// forget removes the once guard for key so that a failed or reset load can
// run again.
func (c *configCache) forget(key string) {
	c.mu.Lock()
	delete(c.onces, key)
	c.mu.Unlock()
}

func cacheKey[T any](prefix string) string {
	return prefix + "|" + typeName[T]()
}

func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.PkgPath() + "." + t.String()
}
