package condition

import "errors"

var (
	// ErrInvalidCondition is returned when a condition cannot be parsed.
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrUnknownSubject is returned for an unsupported @ subject.
	ErrUnknownSubject = errors.New("unknown condition subject")

	// ErrTooDeep is returned when and/or nesting exceeds the depth limit.
	ErrTooDeep = errors.New("condition nested too deep")
)
