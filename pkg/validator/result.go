package validator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// ErrorEntry is one rule failure. Key is "validation.<rule>"; Params always
// holds "field" with the concrete path plus rule-specific values such as
// "min", "max", "value" or "other".
type ErrorEntry struct {
	Key    string         `json:"key"`
	Params map[string]any `json:"params"`
}

// Result is the outcome of one Validate call. It is not modified after
// Validate returns.
type Result struct {
	errors    map[string][]ErrorEntry
	validated map[string]any
}

func newResult() *Result {
	return &Result{
		errors:    make(map[string][]ErrorEntry),
		validated: make(map[string]any),
	}
}

func (r *Result) record(fc *fieldContext) {
	if len(fc.errors) > 0 {
		r.errors[fc.path] = append(r.errors[fc.path], fc.errors...)
	}
	if !fc.failed && fc.present {
		r.validated[fc.path] = fc.value
	}
}

// Valid reports whether no field failed.
func (r *Result) Valid() bool {
	return len(r.errors) == 0
}

// Failed is the negation of Valid.
func (r *Result) Failed() bool {
	return !r.Valid()
}

// Errors returns a copy of the errors keyed by field path.
func (r *Result) Errors() map[string][]ErrorEntry {
	out := make(map[string][]ErrorEntry, len(r.errors))
	for path, entries := range r.errors {
		out[path] = append([]ErrorEntry(nil), entries...)
	}
	return out
}

// Validated returns a copy of the values that passed all of their rules,
// keyed by field path.
func (r *Result) Validated() map[string]any {
	out := make(map[string]any, len(r.validated))
	for path, v := range r.validated {
		out[path] = v
	}
	return out
}

// ErrorsFor returns the errors recorded for path.
func (r *Result) ErrorsFor(path string) []ErrorEntry {
	return append([]ErrorEntry(nil), r.errors[path]...)
}

// HasError reports whether path has at least one error.
func (r *Result) HasError(path string) bool {
	return len(r.errors[path]) > 0
}

// Fields returns the failed field paths in lexicographic order.
func (r *Result) Fields() []string {
	paths := make([]string, 0, len(r.errors))
	for path := range r.errors {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Err returns nil for a valid result and ValidationErrors otherwise.
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}
	var ve ValidationErrors
	for _, path := range r.Fields() {
		for _, e := range r.errors[path] {
			ve.Add(ValidationError{Field: path, Key: e.Key, Params: e.Params})
		}
	}
	return ve
}

// MarshalJSON encodes the result as {"valid", "errors", "validated"}.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Valid     bool                    `json:"valid"`
		Errors    map[string][]ErrorEntry `json:"errors"`
		Validated map[string]any          `json:"validated"`
	}{
		Valid:     r.Valid(),
		Errors:    r.errors,
		Validated: r.validated,
	})
}

// ValidationError is a single failure in error form.
type ValidationError struct {
	Field  string
	Key    string
	Params map[string]any
}

// ValidationErrors collects failures for callers that prefer error returns.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Key))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the error keys recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var keys []string
	for _, err := range ve {
		if err.Field == field {
			keys = append(keys, err.Key)
		}
	}
	return keys
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
