package validator

import "time"

// Observer receives validation events. Implementations must be safe for
// concurrent use; pkg/metrics provides a Prometheus implementation.
type Observer interface {
	// ValidationCompleted is called once per Validate call.
	ValidationCompleted(valid bool, fields int, d time.Duration)
	// RuleFailed is called for every recorded error.
	RuleFailed(field, rule string)
	// PatternCompiled is called the first time a distinct pattern is compiled.
	PatternCompiled(ok bool)
}

type nopObserver struct{}

func (nopObserver) ValidationCompleted(bool, int, time.Duration) {}
func (nopObserver) RuleFailed(string, string)                    {}
func (nopObserver) PatternCompiled(bool)                         {}
