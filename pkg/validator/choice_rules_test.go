package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/signalforge/pkg/validator"
)

func TestIn(t *testing.T) {
	assertRule(t, []any{"in", []any{"draft", "published", 1}}, []ruleCase{
		{"member", "draft", true},
		{"loose numeric match", "1", true},
		{"int member", 1, true},
		{"not a member", "archived", false},
		{"case sensitive", "Draft", false},
		{"null", nil, false},
	})

	t.Run("absent fails", func(t *testing.T) {
		res := check(t, validator.Rules{"status": {[]any{"in", []any{"a"}}}}, map[string]any{})
		assert.Equal(t, []string{"validation.in"}, keys(res, "status"))
	})
}

func TestNotIn(t *testing.T) {
	assertRule(t, []any{"not_in", []any{"admin", "root"}}, []ruleCase{
		{"allowed", "alice", true},
		{"forbidden", "root", false},
		{"null", nil, true},
	})

	t.Run("absent passes", func(t *testing.T) {
		res := check(t, validator.Rules{"user": {[]any{"not_in", []any{"root"}}}}, map[string]any{})
		assert.True(t, res.Valid())
	})
}
