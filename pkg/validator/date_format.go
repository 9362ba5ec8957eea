package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// dateFormats are tried in order by the date rule and the date comparison
// rules.
var dateFormats = []DateFormat{
	mustCompileDateFormat("Y-m-d"),
	mustCompileDateFormat("Y-m-d H:i:s"),
	mustCompileDateFormat(`Y-m-d\TH:i:s`),
}

// dateSeparators are the bytes accepted by the '#' format character.
const dateSeparators = ";:/.,-()"

type numericField struct {
	layout   string
	min, max int
}

// Numeric fields are zero-padded to max digits before parsing.
var numericFields = map[byte]numericField{
	'd': {"02", 1, 2},
	'j': {"02", 1, 2},
	'm': {"01", 1, 2},
	'n': {"01", 1, 2},
	'Y': {"2006", 4, 4},
	'y': {"06", 2, 2},
	'H': {"15", 1, 2},
	'G': {"15", 1, 2},
	'h': {"03", 1, 2},
	'g': {"03", 1, 2},
	'i': {"04", 2, 2},
	's': {"05", 2, 2},
}

var textFields = map[byte]string{
	'D': "Mon",
	'l': "Monday",
	'M': "Jan",
	'F': "January",
	'T': "MST",
}

var fractionDigits = map[byte]int{
	'u': 6,
	'v': 3,
}

var errDateMismatch = errors.New("date does not match format")

// DateFormat is a compiled PHP-style date format such as "d.m.Y H:i".
// Literal characters are matched byte for byte; only the date fields are
// handed to time.Parse.
type DateFormat struct {
	format   string
	segments []dateSegment
}

// dateSegment is either a format character or a run of literal bytes.
type dateSegment struct {
	field   byte
	literal string
}

// String returns the format as written.
func (f DateFormat) String() string {
	return f.format
}

// Parse reads s according to the format. The whole string must be consumed
// and the fields must form a valid date.
func (f DateFormat) Parse(s string) (time.Time, error) {
	var layout, value strings.Builder
	rest := s
	for _, seg := range f.segments {
		if seg.field == 0 {
			if !strings.HasPrefix(rest, seg.literal) {
				return time.Time{}, fmt.Errorf("%w: expected %q at %q", errDateMismatch, seg.literal, rest)
			}
			rest = rest[len(seg.literal):]
			continue
		}

		tok, text, n := scanDateField(seg.field, rest)
		if n == 0 {
			return time.Time{}, fmt.Errorf("%w: field %q at %q", errDateMismatch, seg.field, rest)
		}
		rest = rest[n:]
		if tok != "" {
			layout.WriteString(tok)
			layout.WriteByte(' ')
			value.WriteString(text)
			value.WriteByte(' ')
		}
	}
	if rest != "" {
		return time.Time{}, fmt.Errorf("%w: trailing %q", errDateMismatch, rest)
	}
	return time.Parse(layout.String(), value.String())
}

// scanDateField consumes one field from the front of s. It returns the time
// layout token and canonical text for the field, and the number of bytes
// consumed; n is zero when s does not start with the field. Fields with an
// empty token are matched but not parsed.
func scanDateField(field byte, s string) (tok, text string, n int) {
	switch field {
	case '#':
		if s != "" && strings.IndexByte(dateSeparators, s[0]) >= 0 {
			return "", "", 1
		}
		return "", "", 0

	case '?':
		if s != "" {
			return "", "", 1
		}
		return "", "", 0

	case 'A', 'a':
		if len(s) >= 2 {
			ampm := strings.ToUpper(s[:2])
			if ampm == "AM" || ampm == "PM" {
				return "PM", ampm, 2
			}
		}
		return "", "", 0

	case 'O', 'P', 'p':
		if field == 'p' && strings.HasPrefix(s, "Z") {
			return "Z07:00", "Z", 1
		}
		return scanOffset(s)
	}

	if digits, ok := fractionDigits[field]; ok {
		n := countDigits(s, digits)
		if n == 0 {
			return "", "", 0
		}
		return ".999999999", "." + s[:n], n
	}

	if f, ok := numericFields[field]; ok {
		n := countDigits(s, f.max)
		if n < f.min {
			return "", "", 0
		}
		return f.layout, strings.Repeat("0", f.max-n) + s[:n], n
	}

	if layout, ok := textFields[field]; ok {
		n := 0
		for n < len(s) && isASCIILetter(s[n]) {
			n++
		}
		return layout, s[:n], n
	}

	return "", "", 0
}

// scanOffset reads a UTC offset written as +hh:mm or +hhmm.
func scanOffset(s string) (tok, text string, n int) {
	if s == "" || (s[0] != '+' && s[0] != '-') {
		return "", "", 0
	}
	if countDigits(s[1:], 2) != 2 {
		return "", "", 0
	}
	n = 3
	if n < len(s) && s[n] == ':' {
		n++
	}
	if countDigits(s[n:], 2) != 2 {
		return "", "", 0
	}
	return "Z07:00", s[:3] + ":" + s[n:n+2], n + 2
}

func countDigits(s string, limit int) int {
	n := 0
	for n < len(s) && n < limit && isDigit(s[n]) {
		n++
	}
	return n
}

// compileDateFormat splits a PHP date format into fields and literals.
// Backslash escapes the next byte. Unsupported format letters are rejected.
func compileDateFormat(format string) (DateFormat, error) {
	if format == "" {
		return DateFormat{}, errors.New("empty date format")
	}

	f := DateFormat{format: format}
	literal := func(c byte) {
		if last := len(f.segments) - 1; last >= 0 && f.segments[last].field == 0 {
			f.segments[last].literal += string(c)
			return
		}
		f.segments = append(f.segments, dateSegment{literal: string(c)})
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case c == '\\':
			i++
			if i >= len(format) {
				return DateFormat{}, fmt.Errorf("dangling escape in date format %q", format)
			}
			literal(format[i])
		case c == '|' || c == '!':
			// Unparsed fields are always zero.
		case isDateField(c):
			f.segments = append(f.segments, dateSegment{field: c})
		case isASCIILetter(c) || c == '*' || c == '+':
			return DateFormat{}, fmt.Errorf("unsupported character %q in date format %q", c, format)
		default:
			literal(c)
		}
	}
	return f, nil
}

func mustCompileDateFormat(format string) DateFormat {
	f, err := compileDateFormat(format)
	if err != nil {
		panic(err)
	}
	return f
}

func isDateField(c byte) bool {
	if _, ok := numericFields[c]; ok {
		return true
	}
	if _, ok := textFields[c]; ok {
		return true
	}
	if _, ok := fractionDigits[c]; ok {
		return true
	}
	return strings.IndexByte("#?AaOPp", c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
