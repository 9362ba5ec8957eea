// Package validator implements a declarative, Laravel-style rule engine for
// nested payloads.
//
// Rules are declared per field pattern. A pattern is a field name, a dotted
// path into nested maps and lists, or a path with "*" segments that match
// every key or index at that level. Each rule is a bare name or a list whose
// first element is the name:
//
//	v, err := validator.New(validator.Rules{
//		"email":         {"required", "email"},
//		"age":           {"nullable", "integer", []any{"between", 18, 120}},
//		"password":      {"required", []any{"min", 8}, "confirmed"},
//		"items.*.name":  {"required", []any{"max", 64}},
//		"company_vat":   {[]any{"when", []any{"country", "=", "HR"}, []any{"required", "vat_eu"}}},
//	})
//	if err != nil {
//		// err is an *InvalidRuleError wrapping ErrInvalidRule
//	}
//
//	res := v.Validate(payload)
//	if res.Failed() {
//		for path, entries := range res.Errors() {
//			// entries[i].Key is "validation.<rule>", entries[i].Params["field"] == path
//		}
//	}
//
// # Execution
//
// Field patterns run in lexicographic order; rules run in declaration order.
// Each rule passes, fails or skips. A skip stops the remaining rules of the
// current list. A failure records an ErrorEntry and processing continues
// unless the field carries "bail". When a field lists "nullable" and its
// value is absent, null or empty, every rule except required, nullable,
// filled, present and bail passes without running. "required" still fails
// in that case.
//
// The "when" rule evaluates a condition and runs its then or else list with
// the same semantics. Conditions use the wire format of package condition.
//
// A value that passed all of its rules is copied into Result.Validated under
// its concrete path.
//
// # Limits
//
// Config bounds wildcard depth, accumulated path length, field pattern
// length, rule name length, when nesting and regex match time. Wildcard
// branches beyond the limits are dropped silently. Config can be loaded from
// SIGNALFORGE_* environment variables with package config.
//
// # Concurrency
//
// Parsed rules are immutable and the pattern cache is guarded by a lock, so a
// single Validator may be shared by any number of goroutines.
package validator
