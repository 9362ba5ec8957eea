package value

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Compare performs a loose three-way comparison and returns -1, 0 or 1.
//
// Booleans compare by truthiness, nil equals every falsy value (compared to a
// string, nil acts as ""), numbers and numeric strings compare numerically and
// other strings compare byte-wise. Containers are greater than scalars and
// compare by size first, then entry by entry. Values that cannot be ordered
// (NaN, a key missing on one side) compare as 1. Operands are expected to be
// normalized.
func Compare(a, b any) int {
	ka, kb := KindOf(a), KindOf(b)

	switch {
	case ka == KindNull && kb == KindNull:
		return 0
	case ka == KindBool || kb == KindBool:
		return compareBool(truthy(a), truthy(b))
	case ka == KindNull && kb == KindString:
		return strings.Compare("", b.(string))
	case ka == KindString && kb == KindNull:
		return strings.Compare(a.(string), "")
	case ka == KindNull || kb == KindNull:
		return compareBool(truthy(a), truthy(b))
	case ka.IsContainer() && kb.IsContainer():
		return compareContainers(a, b)
	case ka.IsContainer():
		return 1
	case kb.IsContainer():
		return -1
	case ka.IsNumeric() && kb.IsNumeric():
		return compareNumbers(a, b)
	case ka.IsNumeric() && kb == KindString:
		return compareNumberString(a, b.(string))
	case ka == KindString && kb.IsNumeric():
		return -compareNumberString(b, a.(string))
	case ka == KindString && kb == KindString:
		return compareStrings(a.(string), b.(string))
	}

	if reflect.DeepEqual(a, b) {
		return 0
	}
	return 1
}

// Equal reports whether Compare(a, b) is 0.
func Equal(a, b any) bool {
	return Compare(a, b) == 0
}

// Contains reports whether list holds an element loosely equal to v.
func Contains(list []any, v any) bool {
	for _, item := range list {
		if Equal(v, item) {
			return true
		}
	}
	return false
}

// truthy converts v to bool: nil, false, 0, 0.0, "", "0" and empty containers
// are false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int64:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t != "" && t != "0"
	}
	return !IsEmpty(v)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	default:
		return 1
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareNumbers(a, b any) int {
	ia, aInt := a.(int64)
	ib, bInt := b.(int64)
	if aInt && bInt {
		return compareInt(ia, ib)
	}
	fa, _ := AsFloat(a)
	fb, _ := AsFloat(b)
	return compareFloat(fa, fb)
}

func compareNumberString(n any, s string) int {
	if i, ok := ParseInteger(s); ok {
		if ni, isInt := n.(int64); isInt {
			return compareInt(ni, i)
		}
	}
	if f, ok := ParseNumeric(s); ok {
		nf, _ := AsFloat(n)
		return compareFloat(nf, f)
	}
	return strings.Compare(formatNumber(n), s)
}

func compareStrings(a, b string) int {
	if ia, ok := ParseInteger(a); ok {
		if ib, ok := ParseInteger(b); ok {
			return compareInt(ia, ib)
		}
	}
	if fa, ok := ParseNumeric(a); ok {
		if fb, ok := ParseNumeric(b); ok {
			return compareFloat(fa, fb)
		}
	}
	return strings.Compare(a, b)
}

func compareContainers(a, b any) int {
	keysA, getA := entries(a)
	keysB, getB := entries(b)
	if c := compareInt(int64(len(keysA)), int64(len(keysB))); c != 0 {
		return c
	}
	for _, k := range keysA {
		vb, ok := getB(k)
		if !ok {
			return 1
		}
		va, _ := getA(k)
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return 0
}

// entries lists the keys of a container in iteration order: indices for
// lists, sorted keys for maps.
func entries(v any) ([]string, func(string) (any, bool)) {
	switch t := v.(type) {
	case []any:
		keys := make([]string, len(t))
		for i := range t {
			keys[i] = strconv.Itoa(i)
		}
		return keys, func(k string) (any, bool) {
			i, err := strconv.Atoi(k)
			if err != nil || i < 0 || i >= len(t) {
				return nil, false
			}
			return t[i], true
		}
	case map[string]any:
		return SortedKeys(t), func(k string) (any, bool) {
			item, ok := t[k]
			return item, ok
		}
	}
	return nil, func(string) (any, bool) { return nil, false }
}

// SortedKeys returns the keys of m in ascending byte order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatNumber(n any) string {
	switch t := n.(type) {
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	}
	return ""
}

// CanonicalString returns the textual form used for duplicate detection:
// strings as is, integers in decimal, floats with six significant digits,
// booleans as "1" or "0" and nil as "". Containers and other values report
// false.
func CanonicalString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case bool:
		if t {
			return "1", true
		}
		return "0", true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		if math.IsInf(t, 1) {
			return "inf", true
		}
		if math.IsInf(t, -1) {
			return "-inf", true
		}
		if math.IsNaN(t) {
			return "nan", true
		}
		return strconv.FormatFloat(t, 'g', 6, 64), true
	}
	return "", false
}
