package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signalforge/pkg/config"
	"github.com/dmitrymomot/signalforge/pkg/validator"
)

func TestDefaultConfig(t *testing.T) {
	cfg := validator.DefaultConfig()
	assert.Equal(t, 32, cfg.MaxWildcardDepth)
	assert.Equal(t, 8192, cfg.MaxPathLength)
	assert.Equal(t, 4096, cfg.MaxFieldLength)
	assert.Equal(t, 1024, cfg.MaxRuleNameLength)
	assert.Equal(t, 64, cfg.MaxNestingDepth)
	assert.Equal(t, 100*time.Millisecond, cfg.RegexTimeout)
}

func TestLoadConfig(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("SIGNALFORGE_MAX_WILDCARD_DEPTH", "4")
	t.Setenv("SIGNALFORGE_REGEX_TIMEOUT", "250ms")

	cfg, err := validator.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxWildcardDepth)
	assert.Equal(t, 250*time.Millisecond, cfg.RegexTimeout)
	assert.Equal(t, 8192, cfg.MaxPathLength)

	rules := validator.Rules{"a.*.*.*.*.*": {[]any{"max", 0}}}
	deep := map[string]any{"a": []any{[]any{[]any{[]any{[]any{"x"}}}}}}
	assert.False(t, validator.MustNew(rules).Validate(deep).Valid())

	v, err := validator.New(rules, validator.WithConfig(cfg))
	require.NoError(t, err)
	assert.True(t, v.Validate(deep).Valid(), "branches below the depth limit are dropped")
}

func TestZeroConfigUsesDefaults(t *testing.T) {
	v, err := validator.New(validator.Rules{"name": {"required"}}, validator.WithConfig(validator.Config{}))
	require.NoError(t, err)
	assert.False(t, v.Validate(map[string]any{}).Valid())
}
