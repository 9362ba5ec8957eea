package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrymomot/signalforge/pkg/condition"
	"github.com/dmitrymomot/signalforge/pkg/fieldpath"
	"github.com/dmitrymomot/signalforge/pkg/value"
)

// ParseRules parses a rule specification using DefaultConfig limits. Field
// rule sets are returned in lexicographic order of their patterns. Parsing is
// all-or-nothing: the first invalid field or rule aborts it.
func ParseRules(spec Rules) ([]FieldRules, error) {
	return parseRules(spec, DefaultConfig())
}

func parseRules(spec Rules, cfg Config) ([]FieldRules, error) {
	p := parser{cfg: cfg}

	patterns := make([]string, 0, len(spec))
	for pattern := range spec {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	out := make([]FieldRules, 0, len(patterns))
	for _, pattern := range patterns {
		if err := p.validateField(pattern); err != nil {
			return nil, err
		}
		descriptors, _ := value.Normalize(spec[pattern]).([]any)
		rules, err := p.parseList(pattern, descriptors, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, newFieldRules(pattern, rules))
	}
	return out, nil
}

type parser struct {
	cfg Config
}

// validateField accepts ^[a-z][a-z0-9_]*$ for plain names, or dotted paths
// whose segments are [a-z0-9_]+ or *.
func (p parser) validateField(pattern string) error {
	fail := func(reason string) error {
		return &InvalidRuleError{Field: pattern, Reason: reason, Err: ErrInvalidField}
	}

	if pattern == "" {
		return fail("empty field pattern")
	}
	if len(pattern) > p.cfg.MaxFieldLength {
		return fail(fmt.Sprintf("longer than %d bytes", p.cfg.MaxFieldLength))
	}

	if !strings.Contains(pattern, fieldpath.Separator) && !fieldpath.HasWildcard(pattern) {
		if !isLower(pattern[0]) {
			return fail("must start with a lowercase letter")
		}
		if !isIdentifier(pattern) {
			return fail("only a-z, 0-9 and _ are allowed")
		}
		return nil
	}

	for segment := range strings.SplitSeq(pattern, fieldpath.Separator) {
		if segment == fieldpath.Wildcard {
			continue
		}
		if segment == "" {
			return fail("empty path segment")
		}
		if !isIdentifier(segment) {
			return fail(fmt.Sprintf("invalid path segment %q", segment))
		}
	}
	return nil
}

func (p parser) parseList(field string, descriptors []any, depth int) ([]Rule, error) {
	rules := make([]Rule, 0, len(descriptors))
	for _, d := range descriptors {
		r, err := p.parseRule(field, d, depth)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func (p parser) parseRule(field string, descriptor any, depth int) (Rule, error) {
	var (
		name   string
		params []any
	)
	switch d := descriptor.(type) {
	case string:
		name = d
	case []any:
		if len(d) == 0 {
			return Rule{}, &InvalidRuleError{Field: field, Reason: "empty rule descriptor", Err: ErrMalformedRule}
		}
		s, ok := d[0].(string)
		if !ok {
			return Rule{}, &InvalidRuleError{Field: field, Reason: "rule name must be a string", Err: ErrMalformedRule}
		}
		name, params = s, d[1:]
	default:
		return Rule{}, &InvalidRuleError{
			Field:  field,
			Reason: fmt.Sprintf("descriptor must be a name or a list, got %s", value.TypeName(descriptor)),
			Err:    ErrMalformedRule,
		}
	}

	if len(name) > p.cfg.MaxRuleNameLength {
		return Rule{}, &InvalidRuleError{Field: field, Reason: "rule name too long", Err: ErrUnknownRule}
	}
	kind, ok := LookupRule(name)
	if !ok {
		return Rule{}, &InvalidRuleError{Field: field, Rule: name, Err: ErrUnknownRule}
	}

	r, reason, err := p.parseParams(field, kind, params, depth)
	if err != nil {
		var ire *InvalidRuleError
		if errors.As(err, &ire) {
			return Rule{}, err
		}
		return Rule{}, &InvalidRuleError{Field: field, Rule: name, Reason: err.Error(), Err: ErrMalformedRule}
	}
	if reason != "" {
		return Rule{}, &InvalidRuleError{Field: field, Rule: name, Reason: reason, Err: ErrMalformedRule}
	}
	return r, nil
}

// parseParams validates parameters for kind. A non-empty reason reports a
// malformed rule; err carries failures from nested parsing.
func (p parser) parseParams(field string, kind RuleKind, params []any, depth int) (Rule, string, error) {
	r := Rule{Kind: kind}

	switch kind {
	case RuleMin, RuleMax, RuleGt, RuleGte, RuleLt, RuleLte:
		if len(params) != 1 {
			return r, "expects exactly one integer", nil
		}
		n, ok := value.AsInt(params[0])
		if !ok {
			return r, "parameter must be an integer", nil
		}
		r.Size = n

	case RuleBetween:
		if len(params) != 2 {
			return r, "expects exactly two integers", nil
		}
		lo, okLo := value.AsInt(params[0])
		hi, okHi := value.AsInt(params[1])
		if !okLo || !okHi {
			return r, "parameters must be integers", nil
		}
		r.Min, r.Max = lo, hi

	case RuleRegex, RuleNotRegex:
		s, reason := singleString(params)
		if reason != "" {
			return r, reason, nil
		}
		if s == "" {
			return r, "pattern must not be empty", nil
		}
		r.Pattern = s

	case RuleStartsWith, RuleEndsWith, RuleContains:
		s, reason := singleString(params)
		if reason != "" {
			return r, reason, nil
		}
		r.Text = s

	case RuleDateFormat:
		s, reason := singleString(params)
		if reason != "" {
			return r, reason, nil
		}
		format, err := compileDateFormat(s)
		if err != nil {
			return r, err.Error(), nil
		}
		r.Text, r.Date = s, format

	case RuleSame, RuleDifferent, RuleAfter, RuleBefore, RuleAfterOrEqual, RuleBeforeOrEqual:
		s, reason := singleString(params)
		if reason != "" {
			return r, reason, nil
		}
		if s == "" {
			return r, "field reference must not be empty", nil
		}
		r.Field = s

	case RuleIn, RuleNotIn:
		if len(params) != 1 {
			return r, "expects exactly one list of values", nil
		}
		switch t := params[0].(type) {
		case []any:
			r.Values = t
		case map[string]any:
			r.Values = make([]any, 0, len(t))
			for _, k := range value.SortedKeys(t) {
				r.Values = append(r.Values, t[k])
			}
		default:
			return r, "parameter must be a list of values", nil
		}

	case RuleWhen:
		when, err := p.parseWhen(field, params, depth)
		if err != nil {
			return r, "", err
		}
		r.When = when

	default:
		if len(params) != 0 {
			return r, "takes no parameters", nil
		}
	}

	return r, "", nil
}

func (p parser) parseWhen(field string, params []any, depth int) (*Conditional, error) {
	if depth+1 > p.cfg.MaxNestingDepth {
		return nil, &InvalidRuleError{
			Field:  field,
			Rule:   RuleWhen.String(),
			Reason: fmt.Sprintf("more than %d nested when rules", p.cfg.MaxNestingDepth),
			Err:    ErrNestingTooDeep,
		}
	}
	if len(params) < 2 || len(params) > 3 {
		return nil, errors.New("expects a condition, a then list and an optional else list")
	}

	cond, err := condition.ParseWithDepth(params[0], p.cfg.MaxNestingDepth)
	if err != nil {
		return nil, &InvalidRuleError{Field: field, Rule: RuleWhen.String(), Reason: err.Error(), Err: ErrInvalidCondition}
	}

	thenList, ok := params[1].([]any)
	if !ok {
		return nil, errors.New("then branch must be a list of rules")
	}
	thenRules, err := p.parseList(field, thenList, depth+1)
	if err != nil {
		return nil, err
	}

	var elseRules []Rule
	if len(params) == 3 {
		elseList, ok := params[2].([]any)
		if !ok {
			return nil, errors.New("else branch must be a list of rules")
		}
		if elseRules, err = p.parseList(field, elseList, depth+1); err != nil {
			return nil, err
		}
	}

	return &Conditional{Condition: cond, Then: thenRules, Else: elseRules}, nil
}

func singleString(params []any) (string, string) {
	if len(params) != 1 {
		return "", "expects exactly one string"
	}
	s, ok := params[0].(string)
	if !ok {
		return "", "parameter must be a string"
	}
	return s, ""
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isLower(c) && !isDigit(c) && c != '_' {
			return false
		}
	}
	return true
}
