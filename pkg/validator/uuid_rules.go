package validator

import "github.com/google/uuid"

const uuidLength = 36

// ruleUUID accepts only the hyphenated 8-4-4-4-12 form in either case.
func ruleUUID(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	if !ok || len(s) != uuidLength {
		return fc.fail(r.Kind)
	}
	_, err := uuid.Parse(s)
	return fc.check(r.Kind, err == nil)
}
