package value

import "unicode/utf8"

// ValidUTF8 reports whether s is strictly valid UTF-8: no overlong forms, no
// surrogate halves and nothing above U+10FFFF.
func ValidUTF8(s string) bool {
	return utf8.ValidString(s)
}

// CharCount returns the number of code points in s. Invalid bytes count as
// one character each.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
