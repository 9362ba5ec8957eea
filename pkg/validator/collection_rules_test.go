package validator_test

import "testing"

func TestDistinct(t *testing.T) {
	assertRule(t, "distinct", []ruleCase{
		{"unique strings", []any{"a", "b", "c"}, true},
		{"empty list", []any{}, true},
		{"duplicate strings", []any{"a", "b", "a"}, false},
		{"string and int with same text", []any{"1", 1}, false},
		{"true and one", []any{true, 1}, false},
		{"int and integral float", []any{2, 2.0}, false},
		{"nested lists ignored", []any{[]any{1}, []any{1}}, true},
		{"map values", map[string]any{"x": 1, "y": 2}, true},
		{"duplicate map values", map[string]any{"x": 1, "y": 1}, false},
		{"string", "aa", false},
		{"null", nil, false},
	})
}
