package validator_test

import "testing"

func TestUUID(t *testing.T) {
	assertRule(t, "uuid", []ruleCase{
		{"lowercase", "550e8400-e29b-41d4-a716-446655440000", true},
		{"uppercase", "550E8400-E29B-41D4-A716-446655440000", true},
		{"nil uuid", "00000000-0000-0000-0000-000000000000", true},
		{"no hyphens", "550e8400e29b41d4a716446655440000", false},
		{"braces", "{550e8400-e29b-41d4-a716-446655440000}", false},
		{"urn", "urn:uuid:550e8400-e29b-41d4-a716-446655440000", false},
		{"bad hex", "550e8400-e29b-41d4-a716-44665544000g", false},
		{"misplaced hyphen", "550e840-0e29b-41d4-a716-446655440000", false},
		{"int", 1, false},
	})
}
