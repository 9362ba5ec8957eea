package validator

const (
	oibLength = 11

	phoneMinLength = 7
	phoneMaxLength = 20
	phoneMinDigits = 7

	vatMinLength = 4
	vatMaxLength = 14
)

func ruleOIB(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && isOIB(s))
}

// isOIB validates a Croatian personal identification number with the
// ISO 7064 MOD 11-10 check digit.
func isOIB(s string) bool {
	if len(s) != oibLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}

	t := 10
	for i := range oibLength - 1 {
		t = (int(s[i]-'0') + t) % 10
		if t == 0 {
			t = 10
		}
		t = (t * 2) % 11
	}
	return (11-t)%10 == int(s[oibLength-1]-'0')
}

func rulePhone(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && isPhone(s))
}

// isPhone allows digits, spaces, dashes, parentheses and a leading plus.
func isPhone(s string) bool {
	if len(s) < phoneMinLength || len(s) > phoneMaxLength {
		return false
	}
	digits := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isDigit(c):
			digits++
		case c == '+':
			if i != 0 {
				return false
			}
		case c == ' ' || c == '-' || c == '(' || c == ')':
		default:
			return false
		}
	}
	return digits >= phoneMinDigits
}

func ruleVATEU(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	return fc.check(r.Kind, ok && isVATEU(s))
}

// isVATEU checks the shape of an EU VAT number: a two letter country prefix
// followed by 2 to 12 letters or digits.
func isVATEU(s string) bool {
	if len(s) < vatMinLength || len(s) > vatMaxLength {
		return false
	}
	if !isASCIILetter(s[0]) || !isASCIILetter(s[1]) {
		return false
	}
	for i := 2; i < len(s); i++ {
		if !isASCIILetter(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}
