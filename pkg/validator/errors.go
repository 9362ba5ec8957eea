package validator

import (
	"errors"
	"fmt"
)

// Construction errors. Every error returned by New or ParseRules wraps
// ErrInvalidRule and one of the more specific sentinels below.
var (
	// ErrInvalidRule is the root of all rule construction errors.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrUnknownRule is returned when a rule name is not recognised.
	ErrUnknownRule = fmt.Errorf("%w: unknown rule", ErrInvalidRule)

	// ErrMalformedRule is returned when rule parameters have the wrong arity or type.
	ErrMalformedRule = fmt.Errorf("%w: malformed rule", ErrInvalidRule)

	// ErrInvalidField is returned when a field pattern has invalid syntax.
	ErrInvalidField = fmt.Errorf("%w: invalid field pattern", ErrInvalidRule)

	// ErrInvalidCondition is returned when a when condition cannot be parsed.
	ErrInvalidCondition = fmt.Errorf("%w: invalid condition", ErrInvalidRule)

	// ErrNestingTooDeep is returned when when rules nest beyond the configured depth.
	ErrNestingTooDeep = fmt.Errorf("%w: nesting too deep", ErrInvalidRule)
)

// InvalidRuleError describes why a rule specification was rejected.
type InvalidRuleError struct {
	Field  string
	Rule   string
	Reason string
	Err    error
}

func (e *InvalidRuleError) Error() string {
	msg := fmt.Sprintf("validator: field %q", e.Field)
	if e.Rule != "" {
		msg += fmt.Sprintf(" rule %q", e.Rule)
	}
	msg += ": " + e.Err.Error()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvalidRuleError) Unwrap() error {
	return e.Err
}

// IsInvalidRule reports whether err was caused by an invalid rule specification.
func IsInvalidRule(err error) bool {
	return errors.Is(err, ErrInvalidRule)
}
