package validator

import (
	"strings"

	"github.com/dmitrymomot/signalforge/pkg/value"
)

// Size rules measure characters for strings, elements for arrays and the
// number itself otherwise.

func ruleMin(fc *fieldContext, r *Rule) outcome {
	if value.Size(fc.value) < r.Size {
		return fc.fail(r.Kind, "min", r.Size)
	}
	return outcomePass
}

func ruleMax(fc *fieldContext, r *Rule) outcome {
	if value.Size(fc.value) > r.Size {
		return fc.fail(r.Kind, "max", r.Size)
	}
	return outcomePass
}

func ruleBetween(fc *fieldContext, r *Rule) outcome {
	size := value.Size(fc.value)
	if size < r.Min || size > r.Max {
		return fc.fail(r.Kind, "min", r.Min, "max", r.Max)
	}
	return outcomePass
}

func ruleAlpha(fc *fieldContext, r *Rule) outcome {
	return fc.checkASCII(r.Kind, func(c byte) bool {
		return isASCIILetter(c)
	})
}

func ruleAlphaNum(fc *fieldContext, r *Rule) outcome {
	return fc.checkASCII(r.Kind, func(c byte) bool {
		return isASCIILetter(c) || isDigit(c)
	})
}

func ruleAlphaDash(fc *fieldContext, r *Rule) outcome {
	return fc.checkASCII(r.Kind, func(c byte) bool {
		return isASCIILetter(c) || isDigit(c) || c == '-' || c == '_'
	})
}

// checkASCII requires valid UTF-8 and applies allowed to every ASCII byte.
// Multi-byte characters are accepted as letters.
func (fc *fieldContext) checkASCII(kind RuleKind, allowed func(byte) bool) outcome {
	s, ok := fc.str()
	if !ok || !value.ValidUTF8(s) {
		return fc.fail(kind)
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x80 && !allowed(c) {
			return fc.fail(kind)
		}
	}
	return outcomePass
}

func ruleLowercase(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && !strings.ContainsFunc(s, func(c rune) bool {
		return c >= 'A' && c <= 'Z'
	}))
}

func ruleUppercase(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && !strings.ContainsFunc(s, func(c rune) bool {
		return c >= 'a' && c <= 'z'
	}))
}

func ruleStartsWith(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && strings.HasPrefix(s, r.Text))
}

func ruleEndsWith(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && strings.HasSuffix(s, r.Text))
}

func ruleContains(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && strings.Contains(s, r.Text))
}
