package pattern

import "errors"

var (
	// ErrCompile is returned when a pattern cannot be compiled.
	ErrCompile = errors.New("pattern: compile failed")

	// ErrMatchTimeout is returned when matching exceeds the configured timeout.
	ErrMatchTimeout = errors.New("pattern: match timeout")
)
