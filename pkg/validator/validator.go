package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/signalforge/pkg/condition"
	"github.com/dmitrymomot/signalforge/pkg/fieldpath"
	"github.com/dmitrymomot/signalforge/pkg/logger"
	"github.com/dmitrymomot/signalforge/pkg/pattern"
	"github.com/dmitrymomot/signalforge/pkg/value"
)

// Validator checks payloads against a parsed rule specification. It is safe
// for concurrent use.
type Validator struct {
	rules []FieldRules

	cfg      Config
	logger   *slog.Logger
	observer Observer

	patterns *pattern.Cache
	cond     *condition.Evaluator
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger for debug tracing. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithConfig replaces the limits. Non-positive fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(v *Validator) {
		v.cfg = cfg
	}
}

// WithMatchTimeout bounds a single regex match.
func WithMatchTimeout(d time.Duration) Option {
	return func(v *Validator) {
		v.cfg.RegexTimeout = d
	}
}

// WithObserver registers o to receive validation events.
func WithObserver(o Observer) Option {
	return func(v *Validator) {
		if o != nil {
			v.observer = o
		}
	}
}

// New parses rules and returns a ready Validator. Any invalid field pattern,
// rule name, parameter or condition yields an *InvalidRuleError and no
// Validator.
func New(rules Rules, opts ...Option) (*Validator, error) {
	v := &Validator{
		cfg:      DefaultConfig(),
		logger:   logger.Discard(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(v)
	}
	v.cfg = v.cfg.withDefaults()

	parsed, err := parseRules(rules, v.cfg)
	if err != nil {
		return nil, err
	}
	v.rules = parsed
	v.init()
	return v, nil
}

// Make is an alias of New.
func Make(rules Rules, opts ...Option) (*Validator, error) {
	return New(rules, opts...)
}

// MustNew is like New but panics on invalid rules.
func MustNew(rules Rules, opts ...Option) *Validator {
	v, err := New(rules, opts...)
	if err != nil {
		panic(fmt.Errorf("validator: %w", err))
	}
	return v
}

func (v *Validator) init() {
	v.patterns = pattern.NewCache(
		pattern.WithMatchTimeout(v.cfg.RegexTimeout),
		pattern.WithLogger(v.logger),
		pattern.WithCompileHook(func(_ string, err error) {
			v.observer.PatternCompiled(err == nil)
		}),
	)
	v.cond = condition.NewEvaluator(v.patterns,
		condition.WithLogger(v.logger),
		condition.WithMaxDepth(v.cfg.MaxNestingDepth),
	)
}

// Clone returns a Validator sharing the parsed rules with an empty pattern
// cache.
func (v *Validator) Clone() *Validator {
	c := &Validator{
		rules:    v.rules,
		cfg:      v.cfg,
		logger:   v.logger,
		observer: v.observer,
	}
	c.init()
	return c
}

// Fields returns the field patterns in execution order.
func (v *Validator) Fields() []string {
	out := make([]string, len(v.rules))
	for i, fr := range v.rules {
		out[i] = fr.Pattern
	}
	return out
}

// Validate runs every rule against data. data is usually a map[string]any;
// typed slices, maps and numbers are converted with value.Normalize first.
// Validation problems are reported in the Result, never as errors.
func (v *Validator) Validate(data any) *Result {
	return v.ValidateContext(context.Background(), data)
}

// ValidateContext is Validate with a context for logging. Context extractors
// configured on the logger add their attributes to the debug records.
func (v *Validator) ValidateContext(ctx context.Context, data any) *Result {
	start := time.Now()
	root := value.Normalize(data)
	res := newResult()

	fields := 0
	for i := range v.rules {
		fr := &v.rules[i]
		expanded, truncated := fieldpath.Expand(fr.Pattern, root, v.cfg.pathLimits())
		if truncated {
			v.logger.DebugContext(ctx, "wildcard expansion truncated",
				logger.Field(fr.Pattern),
				slog.Int("max_depth", v.cfg.MaxWildcardDepth),
				slog.Int("max_path_length", v.cfg.MaxPathLength),
			)
		}

		for _, f := range expanded {
			fc := newFieldContext(ctx, v, fr, f, root)
			fc.run(fr.Rules)
			res.record(fc)
			fields++
		}
	}

	elapsed := time.Since(start)
	v.observer.ValidationCompleted(res.Valid(), fields, elapsed)
	v.logger.DebugContext(ctx, "validation finished",
		slog.Int("fields", fields),
		slog.Int("failed", len(res.errors)),
		logger.Duration(elapsed),
	)
	return res
}
