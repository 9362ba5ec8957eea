package validator

import (
	"github.com/dmitrymomot/signalforge/pkg/condition"
)

// Rules maps field patterns to ordered rule descriptors. A descriptor is a
// bare rule name or a list whose first element is the name and whose
// remaining elements are parameters:
//
//	validator.Rules{
//		"email":        {"required", "email"},
//		"age":          {"nullable", []any{"between", 18, 120}},
//		"items.*.name": {"required", []any{"max", 64}},
//	}
type Rules map[string][]any

// Rule is a parsed rule. Only the parameter fields belonging to Kind are set;
// a Rule is never modified after parsing.
type Rule struct {
	Kind RuleKind

	// min, max, gt, gte, lt, lte
	Size int64

	// between
	Min int64
	Max int64

	// regex, not_regex
	Pattern string

	// starts_with, ends_with, contains, date_format
	Text string

	// date_format: Text compiled
	Date DateFormat

	// same, different, after, before, after_or_equal, before_or_equal
	Field string

	// in, not_in
	Values []any

	// when
	When *Conditional
}

// Conditional holds the branches of a when rule.
type Conditional struct {
	Condition *condition.Condition
	Then      []Rule
	Else      []Rule
}

// FieldRules is the ordered rule list for one field pattern.
type FieldRules struct {
	Pattern string
	Rules   []Rule

	hasNullable bool
	hasBail     bool
}

func newFieldRules(pattern string, rules []Rule) FieldRules {
	fr := FieldRules{Pattern: pattern, Rules: rules}
	for _, r := range rules {
		switch r.Kind {
		case RuleNullable:
			fr.hasNullable = true
		case RuleBail:
			fr.hasBail = true
		}
	}
	return fr
}
