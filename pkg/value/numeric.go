package value

import (
	"errors"
	"strconv"
	"strings"
)

const numericSpace = " \t\n\r\v\f"

// ParseNumeric parses s as a decimal number with optional surrounding
// whitespace, sign, fraction and exponent. Hexadecimal, digit separators,
// "Inf" and "NaN" are not numeric. Out-of-range exponents yield ±Inf.
func ParseNumeric(s string) (float64, bool) {
	core := strings.Trim(s, numericSpace)
	if !isDecimalNumber(core) {
		return 0, false
	}
	f, err := strconv.ParseFloat(core, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// ParseInteger parses s as a base-10 integer surrounded by optional spaces and
// tabs. Values outside the int64 range are rejected.
func ParseInteger(s string) (int64, bool) {
	core := strings.Trim(s, " \t")
	digits := strings.TrimLeft(core, "+-")
	if len(core)-len(digits) > 1 || digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(core, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isDecimalNumber matches [+-]?(digits[.digits?]|.digits)([eE][+-]?digits)?
func isDecimalNumber(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := countDigits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracDigits = countDigits(s[i:])
		i += fracDigits
	}
	if intDigits == 0 && fracDigits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := countDigits(s[i:])
		if expDigits == 0 {
			return false
		}
		i += expDigits
	}

	return i == len(s)
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// AsFloat returns the numeric value of integers, floats and numeric strings.
func AsFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case string:
		return ParseNumeric(t)
	}
	return 0, false
}

// IsNumeric reports whether v is a number or a numeric string.
func IsNumeric(v any) bool {
	_, ok := AsFloat(v)
	return ok
}

// AsInt returns v as int64 for integers, floats with no fractional part and
// integer strings.
func AsInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case float64:
		if t != float64(truncate(t)) {
			return 0, false
		}
		return truncate(t), true
	case string:
		return ParseInteger(t)
	}
	return 0, false
}
