package validator

const (
	ibanMinLength = 15
	ibanMaxLength = 34
)

func ruleIBAN(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && isIBAN(s))
}

// isIBAN verifies the ISO 7064 MOD 97-10 checksum. The country code and check
// digits move to the end and letters count as 10 to 35. Spaces are ignored
// after the first four characters.
func isIBAN(s string) bool {
	if len(s) < ibanMinLength || len(s) > ibanMaxLength {
		return false
	}

	remainder := 0
	feed := func(c byte) bool {
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
			fallthrough
		case c >= 'A' && c <= 'Z':
			n := int(c-'A') + 10
			remainder = (remainder*100 + n) % 97
		case isDigit(c):
			remainder = (remainder*10 + int(c-'0')) % 97
		default:
			return false
		}
		return true
	}

	for i := 4; i < len(s); i++ {
		if s[i] == ' ' {
			continue
		}
		if !feed(s[i]) {
			return false
		}
	}
	for i := range 4 {
		if !feed(s[i]) {
			return false
		}
	}
	return remainder == 1
}
