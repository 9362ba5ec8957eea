package condition_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signalforge/pkg/condition"
	"github.com/dmitrymomot/signalforge/pkg/pattern"
)

func newEvaluator() *condition.Evaluator {
	return condition.NewEvaluator(pattern.NewCache())
}

func TestParse(t *testing.T) {
	t.Run("field reference with operator and value", func(t *testing.T) {
		c, err := condition.Parse([]any{"country", "=", "HR"})
		require.NoError(t, err)
		assert.Equal(t, condition.KindSimple, c.Kind)
		assert.Equal(t, condition.SubjectField, c.Subject)
		assert.Equal(t, "country", c.Field)
		assert.Equal(t, condition.OpEq, c.Operator)
		assert.Equal(t, "HR", c.Value)
	})

	t.Run("operator defaults to equality", func(t *testing.T) {
		c, err := condition.Parse([]any{"@value"})
		require.NoError(t, err)
		assert.Equal(t, condition.OpEq, c.Operator)
		assert.Nil(t, c.Value)

		c, err = condition.Parse([]any{"@value", "~=", "x"})
		require.NoError(t, err)
		assert.Equal(t, condition.OpEq, c.Operator)
	})

	t.Run("all operators", func(t *testing.T) {
		ops := map[string]condition.Operator{
			"=": condition.OpEq, "!=": condition.OpNeq, ">": condition.OpGt, ">=": condition.OpGte,
			"<": condition.OpLt, "<=": condition.OpLte, "in": condition.OpIn, "not_in": condition.OpNotIn,
			"filled": condition.OpFilled, "empty": condition.OpEmpty, "matches": condition.OpMatches,
		}
		for token, want := range ops {
			c, err := condition.Parse([]any{"other", token, "v"})
			require.NoError(t, err)
			assert.Equal(t, want, c.Operator, token)
		}
	})

	t.Run("unary operators ignore the value", func(t *testing.T) {
		c, err := condition.Parse([]any{"other", "filled", "ignored"})
		require.NoError(t, err)
		assert.Nil(t, c.Value)
	})

	t.Run("self subjects", func(t *testing.T) {
		c, err := condition.Parse([]any{"@matches", "/^a/"})
		require.NoError(t, err)
		assert.Equal(t, condition.SubjectMatches, c.Subject)
		assert.Equal(t, condition.OpMatches, c.Operator)
		assert.Equal(t, "/^a/", c.Value)

		c, err = condition.Parse([]string{"@empty"})
		require.NoError(t, err)
		assert.Equal(t, condition.SubjectEmpty, c.Subject)
	})

	t.Run("compound skips malformed children", func(t *testing.T) {
		c, err := condition.Parse([]any{"and", []any{"@filled"}, "junk", []any{int64(1)}, []any{"@nope"}, []any{"x", "=", int64(1)}})
		require.NoError(t, err)
		assert.Equal(t, condition.KindAnd, c.Kind)
		assert.Len(t, c.Children, 2)
	})

	t.Run("errors", func(t *testing.T) {
		for name, spec := range map[string]any{
			"not a list":        "@value",
			"empty list":        []any{},
			"non-string head":   []any{int64(1), "=", int64(1)},
			"unknown @ subject": []any{"@size", ">", int64(1)},
		} {
			_, err := condition.Parse(spec)
			assert.Error(t, err, name)
		}

		_, err := condition.Parse([]any{"@size"})
		assert.True(t, errors.Is(err, condition.ErrUnknownSubject))
	})

	t.Run("depth guard", func(t *testing.T) {
		var spec any = []any{"@filled"}
		for range 100 {
			spec = []any{"and", spec}
		}
		_, err := condition.Parse(spec)
		require.Error(t, err)
		assert.True(t, errors.Is(err, condition.ErrTooDeep))

		_, err = condition.ParseWithDepth([]any{"or", []any{"or", []any{"@filled"}}}, 3)
		assert.NoError(t, err)
	})
}

func TestEvaluate(t *testing.T) {
	e := newEvaluator()
	root := map[string]any{
		"country": "HR",
		"age":     int64(30),
		"user":    map[string]any{"role": "admin"},
		"tags":    []any{"a", "b"},
	}

	tests := []struct {
		name    string
		cond    []any
		current any
		want    bool
	}{
		{"other field equals", []any{"country", "=", "HR"}, nil, true},
		{"other field not equals", []any{"country", "!=", "HR"}, nil, false},
		{"other field numeric string", []any{"age", ">=", "18"}, nil, true},
		{"nested other field", []any{"user.role", "in", []any{"admin", "owner"}}, nil, true},
		{"missing other field is null", []any{"missing", "=", nil}, nil, true},
		{"missing other field is empty", []any{"missing", "empty"}, nil, true},
		{"other field filled", []any{"tags", "filled"}, nil, true},
		{"not_in with non-list operand", []any{"country", "not_in", "HR"}, nil, true},
		{"length of string", []any{"@length", ">", int64(3)}, "čćžšđ", true},
		{"length of list", []any{"@length", "=", int64(2)}, []any{int64(1), int64(2)}, true},
		{"length of number is zero", []any{"@length", "=", int64(0)}, int64(12345), true},
		{"type string", []any{"@type", "=", "string"}, "x", true},
		{"type of absent is null", []any{"@type", "=", "null"}, nil, true},
		{"type integer", []any{"@type", "=", "integer"}, int64(1), true},
		{"value less than", []any{"@value", "<", int64(10)}, int64(5), true},
		{"empty subject", []any{"@empty"}, "", true},
		{"filled subject", []any{"@filled"}, "x", true},
		{"matches", []any{"@matches", "/^\\d+$/"}, "123", true},
		{"matches non-string", []any{"@matches", "/^\\d+$/"}, int64(123), false},
		{"invalid pattern never matches", []any{"@matches", "/(/"}, "(", false},
		{"matches operator on other field", []any{"country", "matches", "/^[A-Z]{2}$/"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := condition.Parse(tt.cond)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Evaluate(c, tt.current, root, "field"))
		})
	}

	t.Run("vacuous identities", func(t *testing.T) {
		assert.True(t, e.Evaluate(condition.And(), nil, root, "f"))
		assert.False(t, e.Evaluate(condition.Or(), nil, root, "f"))
		assert.True(t, e.Evaluate(nil, nil, root, "f"))
	})

	t.Run("short circuit", func(t *testing.T) {
		var calls int
		counting := countingMatcher{calls: &calls}
		ce := condition.NewEvaluator(counting)

		c := condition.And(
			condition.Self(condition.SubjectEmpty, condition.OpEmpty, nil),
			condition.Self(condition.SubjectMatches, condition.OpMatches, "x"),
		)
		assert.False(t, ce.Evaluate(c, "filled", root, "f"))
		assert.Zero(t, calls)

		c = condition.Or(
			condition.Self(condition.SubjectFilled, condition.OpFilled, nil),
			condition.Self(condition.SubjectMatches, condition.OpMatches, "x"),
		)
		assert.True(t, ce.Evaluate(c, "filled", root, "f"))
		assert.Zero(t, calls)
	})

	t.Run("evaluation depth guard", func(t *testing.T) {
		c := condition.Self(condition.SubjectFilled, condition.OpFilled, nil)
		for range 10 {
			c = condition.And(c)
		}
		shallow := condition.NewEvaluator(nil, condition.WithMaxDepth(5))
		assert.False(t, shallow.Evaluate(c, "x", root, "f"))
		assert.True(t, e.Evaluate(c, "x", root, "f"))
	})

	t.Run("debug trace", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		le := condition.NewEvaluator(nil, condition.WithLogger(logger))

		le.Evaluate(condition.Field("country", condition.OpEq, "HR"), nil, root, "vat")
		assert.Contains(t, buf.String(), "simple condition evaluated")
		assert.Contains(t, buf.String(), "field=vat")
		assert.Contains(t, buf.String(), "matched=true")
	})
}

type countingMatcher struct {
	calls *int
}

func (m countingMatcher) MatchContext(_ context.Context, pattern, subject string) bool {
	*m.calls++
	return true
}

type ctxKey struct{}

// recordingMatcher stores the context value seen by the last match.
type recordingMatcher struct {
	seen *any
}

func (m recordingMatcher) MatchContext(ctx context.Context, pattern, subject string) bool {
	*m.seen = ctx.Value(ctxKey{})
	return true
}

func TestEvaluateContext(t *testing.T) {
	root := map[string]any{"code": "HR-1"}
	ctx := context.WithValue(context.Background(), ctxKey{}, "trace-7")

	t.Run("context reaches the matcher", func(t *testing.T) {
		var seen any
		e := condition.NewEvaluator(recordingMatcher{seen: &seen})

		c := condition.Or(
			condition.Self(condition.SubjectEmpty, condition.OpEmpty, nil),
			condition.Field("code", condition.OpMatches, "/^HR/"),
		)
		assert.True(t, e.EvaluateContext(ctx, c, "x", root, "f"))
		assert.Equal(t, "trace-7", seen)
	})

	t.Run("context reaches the debug trace", func(t *testing.T) {
		var buf bytes.Buffer
		h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		log := slog.New(withTrace{h})
		e := condition.NewEvaluator(nil, condition.WithLogger(log))

		e.EvaluateContext(ctx, condition.Field("code", condition.OpEq, "HR-1"), nil, root, "f")
		assert.Contains(t, buf.String(), "simple condition evaluated")
		assert.Contains(t, buf.String(), "trace=trace-7")
	})
}

// withTrace copies the ctxKey value of each record's context into the record.
type withTrace struct {
	slog.Handler
}

func (h withTrace) Handle(ctx context.Context, rec slog.Record) error {
	if v := ctx.Value(ctxKey{}); v != nil {
		rec.AddAttrs(slog.Any("trace", v))
	}
	return h.Handler.Handle(ctx, rec)
}

func TestSubjectString(t *testing.T) {
	tests := map[condition.Subject]string{
		condition.SubjectValue:   "@value",
		condition.SubjectLength:  "@length",
		condition.SubjectType:    "@type",
		condition.SubjectEmpty:   "@empty",
		condition.SubjectFilled:  "@filled",
		condition.SubjectMatches: "@matches",
		condition.SubjectField:   "field",
	}
	for range 20 {
		for subject, want := range tests {
			assert.Equal(t, want, subject.String())
		}
	}
}
