package pattern

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/dmitrymomot/signalforge/pkg/value"
)

const delimiters = "/#~@%!"

// Pattern is a compiled regular expression.
type Pattern struct {
	raw  string
	expr string
	re   *regexp2.Regexp
}

// Raw returns the pattern text as written by the caller.
func (p *Pattern) Raw() string {
	return p.raw
}

// Expr returns the expression body with delimiters and flags removed.
func (p *Pattern) Expr() string {
	return p.expr
}

// Match reports whether s contains a match. Subjects that are not valid UTF-8
// never match.
func (p *Pattern) Match(s string) (bool, error) {
	if !value.ValidUTF8(s) {
		return false, nil
	}
	ok, err := p.re.MatchString(s)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMatchTimeout, err)
	}
	return ok, nil
}

// Compile parses raw, strips Perl-style delimiters and flags and compiles the
// body with the given match timeout. The shorthand classes \d, \w and \s
// match ASCII characters only.
func Compile(raw string, timeout time.Duration) (*Pattern, error) {
	expr, opts := split(raw)
	re, err := regexp2.Compile(asciiClasses(expr), opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &Pattern{raw: raw, expr: expr, re: re}, nil
}

// split returns the expression body and compile options. Patterns without a
// recognised delimiter pair are used verbatim.
func split(raw string) (string, regexp2.RegexOptions) {
	if len(raw) < 2 || !strings.ContainsRune(delimiters, rune(raw[0])) {
		return raw, regexp2.None
	}

	end := strings.LastIndexByte(raw, raw[0])
	if end <= 0 {
		return raw, regexp2.None
	}

	opts := regexp2.None
	for _, flag := range raw[end+1:] {
		switch flag {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'x':
			opts |= regexp2.IgnorePatternWhitespace
		}
	}
	return raw[1:end], opts
}

var (
	// Shorthand expansions used outside a character class.
	asciiShorthand = map[byte]string{
		'd': `[0-9]`,
		'D': `[^0-9]`,
		'w': `[0-9A-Za-z_]`,
		'W': `[^0-9A-Za-z_]`,
		's': `[\t\n\v\f\r\x20]`,
		'S': `[^\t\n\v\f\r\x20]`,
	}
	// Positive shorthand expansions used inside a character class.
	asciiClassMembers = map[byte]string{
		'd': `0-9`,
		'w': `0-9A-Za-z_`,
		's': `\t\n\v\f\r\x20`,
	}
)

// asciiClasses rewrites \d, \w and \s (and their negations outside a
// character class) to explicit ASCII ranges. regexp2 treats them as Unicode
// classes otherwise. Negated shorthands inside a class are left unchanged.
func asciiClasses(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))

	depth := 0 // character class nesting, > 0 inside [...]
	classStart := false
	for i := 0; i < len(expr); i++ {
		ch := expr[i]
		switch {
		case ch == '\\' && i+1 < len(expr):
			next := expr[i+1]
			i++
			classStart = false
			if depth == 0 {
				if rep, ok := asciiShorthand[next]; ok {
					b.WriteString(rep)
					continue
				}
			} else if rep, ok := asciiClassMembers[next]; ok {
				b.WriteString(rep)
				continue
			}
			b.WriteByte(ch)
			b.WriteByte(next)
			continue

		case ch == '[':
			if depth == 0 || (i > 0 && expr[i-1] == '-') {
				depth++
				classStart = true
				b.WriteByte(ch)
				if i+1 < len(expr) && expr[i+1] == '^' {
					b.WriteByte('^')
					i++
				}
				continue
			}

		case ch == ']' && depth > 0 && !classStart:
			depth--
		}
		classStart = false
		b.WriteByte(ch)
	}
	return b.String()
}
