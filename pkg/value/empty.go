package value

import "math"

// IsEmpty reports whether v is empty: nil, false, the empty string and
// containers without entries. Numbers and true are never empty.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// Length returns the character count of a string or the entry count of a
// container; every other value has length 0.
func Length(v any) int {
	switch t := v.(type) {
	case string:
		return CharCount(t)
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	}
	return 0
}

// Size is the measure used by min, max and between: Length for strings and
// containers, the number itself for integers and the truncated value for
// floats. Every other value has size 0.
func Size(v any) int64 {
	switch t := v.(type) {
	case string, []any, map[string]any:
		return int64(Length(t))
	case int64:
		return t
	case float64:
		return truncate(t)
	}
	return 0
}

// truncate converts f toward zero, saturating at the int64 bounds. NaN is 0.
func truncate(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}
