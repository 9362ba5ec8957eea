package condition

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/signalforge/pkg/fieldpath"
	"github.com/dmitrymomot/signalforge/pkg/value"
)

// Matcher performs an unanchored regular expression search. Invalid patterns
// must report false.
type Matcher interface {
	MatchContext(ctx context.Context, pattern, subject string) bool
}

// Evaluator evaluates parsed conditions.
type Evaluator struct {
	patterns Matcher
	logger   *slog.Logger
	maxDepth int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for debug traces.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMaxDepth bounds the nesting evaluated; deeper branches evaluate to false.
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// NewEvaluator creates an evaluator that resolves regular expressions
// through patterns.
func NewEvaluator(patterns Matcher, opts ...Option) *Evaluator {
	e := &Evaluator{
		patterns: patterns,
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate reports whether c holds for the field at path whose value is
// current. Other fields are resolved against root. A nil condition holds.
func (e *Evaluator) Evaluate(c *Condition, current, root any, path string) bool {
	return e.EvaluateContext(context.Background(), c, current, root, path)
}

// EvaluateContext is Evaluate with a context for debug traces and pattern
// matching.
func (e *Evaluator) EvaluateContext(ctx context.Context, c *Condition, current, root any, path string) bool {
	return e.eval(ctx, c, current, root, path, 0)
}

func (e *Evaluator) eval(ctx context.Context, c *Condition, current, root any, path string, depth int) bool {
	if c == nil {
		return true
	}
	if depth >= e.maxDepth {
		e.logger.DebugContext(ctx, "condition depth limit reached",
			slog.String("field", path),
			slog.Int("limit", e.maxDepth))
		return false
	}

	switch c.Kind {
	case KindAnd:
		for _, child := range c.Children {
			if !e.eval(ctx, child, current, root, path, depth+1) {
				return false
			}
		}
		return true

	case KindOr:
		for _, child := range c.Children {
			if e.eval(ctx, child, current, root, path, depth+1) {
				return true
			}
		}
		return false

	case KindSimple:
		matched := e.evalSimple(ctx, c, current, root)
		if e.logger.Enabled(ctx, slog.LevelDebug) {
			e.logger.DebugContext(ctx, "simple condition evaluated",
				slog.String("field", path),
				slog.String("subject", subjectLabel(c)),
				slog.String("operator", c.Operator.String()),
				slog.Any("expected", c.Value),
				slog.Bool("matched", matched))
		}
		return matched
	}

	return false
}

func (e *Evaluator) evalSimple(ctx context.Context, c *Condition, current, root any) bool {
	var subject any

	switch c.Subject {
	case SubjectEmpty:
		return value.IsEmpty(current)
	case SubjectFilled:
		return !value.IsEmpty(current)
	case SubjectMatches:
		return e.match(ctx, current, c.Value)
	case SubjectLength:
		subject = int64(value.Length(current))
	case SubjectType:
		subject = value.TypeName(current)
	case SubjectValue:
		subject = current
	case SubjectField:
		subject, _ = fieldpath.Resolve(c.Field, root)
	}

	return e.apply(ctx, c.Operator, subject, c.Value)
}

func (e *Evaluator) apply(ctx context.Context, op Operator, subject, expected any) bool {
	switch op {
	case OpEq:
		return value.Compare(subject, expected) == 0
	case OpNeq:
		return value.Compare(subject, expected) != 0
	case OpGt:
		return value.Compare(subject, expected) > 0
	case OpGte:
		return value.Compare(subject, expected) >= 0
	case OpLt:
		return value.Compare(subject, expected) < 0
	case OpLte:
		return value.Compare(subject, expected) <= 0
	case OpIn:
		list, ok := members(expected)
		return ok && value.Contains(list, subject)
	case OpNotIn:
		list, ok := members(expected)
		return !ok || !value.Contains(list, subject)
	case OpFilled:
		return !value.IsEmpty(subject)
	case OpEmpty:
		return value.IsEmpty(subject)
	case OpMatches:
		return e.match(ctx, subject, expected)
	}
	return false
}

func (e *Evaluator) match(ctx context.Context, subject, pattern any) bool {
	s, ok := subject.(string)
	if !ok {
		return false
	}
	p, ok := pattern.(string)
	if !ok || e.patterns == nil {
		return false
	}
	return e.patterns.MatchContext(ctx, p, s)
}

// members returns the values of a list or map operand.
func members(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case map[string]any:
		out := make([]any, 0, len(t))
		for _, k := range value.SortedKeys(t) {
			out = append(out, t[k])
		}
		return out, true
	}
	return nil, false
}

func subjectLabel(c *Condition) string {
	if c.Subject == SubjectField {
		return c.Field
	}
	return c.Subject.String()
}
