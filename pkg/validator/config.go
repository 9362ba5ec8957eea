package validator

import (
	"time"

	"github.com/dmitrymomot/signalforge/pkg/condition"
	"github.com/dmitrymomot/signalforge/pkg/config"
	"github.com/dmitrymomot/signalforge/pkg/fieldpath"
	"github.com/dmitrymomot/signalforge/pkg/pattern"
)

// EnvPrefix is prepended to the variable names of Config by LoadConfig.
const EnvPrefix = "SIGNALFORGE_"

// Config holds the resource limits of a Validator. LoadConfig populates it
// from SIGNALFORGE_* environment variables.
type Config struct {
	MaxWildcardDepth  int           `env:"MAX_WILDCARD_DEPTH" envDefault:"32"`
	MaxPathLength     int           `env:"MAX_PATH_LENGTH" envDefault:"8192"`
	MaxFieldLength    int           `env:"MAX_FIELD_LENGTH" envDefault:"4096"`
	MaxRuleNameLength int           `env:"MAX_RULE_NAME_LENGTH" envDefault:"1024"`
	MaxNestingDepth   int           `env:"MAX_NESTING_DEPTH" envDefault:"64"`
	RegexTimeout      time.Duration `env:"REGEX_TIMEOUT" envDefault:"100ms"`
}

// DefaultConfig returns the built-in limits.
func DefaultConfig() Config {
	return Config{
		MaxWildcardDepth:  fieldpath.DefaultMaxDepth,
		MaxPathLength:     fieldpath.DefaultMaxPathLength,
		MaxFieldLength:    4096,
		MaxRuleNameLength: 1024,
		MaxNestingDepth:   condition.DefaultMaxDepth,
		RegexTimeout:      pattern.DefaultMatchTimeout,
	}
}

// LoadConfig reads Config from the environment. Unset variables take their
// default values.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// withDefaults replaces non-positive limits with their defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxWildcardDepth <= 0 {
		c.MaxWildcardDepth = d.MaxWildcardDepth
	}
	if c.MaxPathLength <= 0 {
		c.MaxPathLength = d.MaxPathLength
	}
	if c.MaxFieldLength <= 0 {
		c.MaxFieldLength = d.MaxFieldLength
	}
	if c.MaxRuleNameLength <= 0 {
		c.MaxRuleNameLength = d.MaxRuleNameLength
	}
	if c.MaxNestingDepth <= 0 {
		c.MaxNestingDepth = d.MaxNestingDepth
	}
	if c.RegexTimeout <= 0 {
		c.RegexTimeout = d.RegexTimeout
	}
	return c
}

func (c Config) pathLimits() fieldpath.Limits {
	return fieldpath.Limits{MaxDepth: c.MaxWildcardDepth, MaxPathLength: c.MaxPathLength}
}
