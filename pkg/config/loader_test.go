package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signalforge/pkg/config"
)

type defaultsConfig struct {
	Name    string        `env:"CFG_TEST_DEFAULT_NAME" envDefault:"signalforge"`
	Depth   int           `env:"CFG_TEST_DEFAULT_DEPTH" envDefault:"32"`
	Enabled bool          `env:"CFG_TEST_DEFAULT_ENABLED" envDefault:"true"`
	Timeout time.Duration `env:"CFG_TEST_DEFAULT_TIMEOUT" envDefault:"100ms"`
}

type successConfig struct {
	Name  string `env:"CFG_TEST_SUCCESS_NAME"`
	Depth int    `env:"CFG_TEST_SUCCESS_DEPTH"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED_VALUE" envDefault:"first"`
}

type prefixedConfig struct {
	Depth int `env:"DEPTH" envDefault:"1"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED_VALUE,required"`
}

type invalidConfig struct {
	Depth int `env:"CFG_TEST_INVALID_DEPTH"`
}

type fileConfig struct {
	Level string `env:"CFG_TEST_FILE_LEVEL"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "signalforge", cfg.Name)
		assert.Equal(t, 32, cfg.Depth)
		assert.True(t, cfg.Enabled)
		assert.Equal(t, 100*time.Millisecond, cfg.Timeout)
	})

	t.Run("environment values", func(t *testing.T) {
		t.Setenv("CFG_TEST_SUCCESS_NAME", "engine")
		t.Setenv("CFG_TEST_SUCCESS_DEPTH", "8")

		var cfg successConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "engine", cfg.Name)
		assert.Equal(t, 8, cfg.Depth)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *successConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Setenv("CFG_TEST_INVALID_DEPTH", "deep")

		var cfg invalidConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

		t.Setenv("CFG_TEST_REQUIRED_VALUE", "now set")
		require.NoError(t, config.Load(&cfg), "a failed load is retried")
		assert.Equal(t, "now set", cfg.Value)
	})
}

func TestLoadCaching(t *testing.T) {
	config.ResetCache()

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CFG_TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value is returned")

	var reloaded cachedConfig
	require.NoError(t, config.Reload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoadWithPrefix(t *testing.T) {
	config.ResetCache()
	t.Setenv("ALPHA_DEPTH", "5")
	t.Setenv("BETA_DEPTH", "9")

	var alpha, beta, plain prefixedConfig
	require.NoError(t, config.Load(&alpha, config.WithPrefix("ALPHA_")))
	require.NoError(t, config.Load(&beta, config.WithPrefix("BETA_")))
	require.NoError(t, config.Load(&plain))

	assert.Equal(t, 5, alpha.Depth)
	assert.Equal(t, 9, beta.Depth)
	assert.Equal(t, 1, plain.Depth)
}

func TestLoadConcurrent(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFG_TEST_SUCCESS_NAME", "shared")

	var wg sync.WaitGroup
	results := make([]successConfig, 16)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = config.Load(&results[i])
		}(i)
	}
	wg.Wait()

	for i := range results {
		assert.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i].Name)
	}
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()

	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("CFG_TEST_INVALID_DEPTH", "nope")
	assert.Panics(t, func() {
		var cfg invalidConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFG_TEST_FILE_LEVEL=debug\n"), 0o600))

	t.Cleanup(func() { os.Unsetenv("CFG_TEST_FILE_LEVEL") })
	require.NoError(t, config.LoadEnv(path))

	config.ResetCache()
	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "debug", cfg.Level)

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(dir, "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
		assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(dir, "missing.env")) })
	})
}
