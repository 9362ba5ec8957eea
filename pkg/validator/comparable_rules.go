package validator

import "github.com/dmitrymomot/signalforge/pkg/value"

const confirmationSuffix = "_confirmation"

func ruleSame(fc *fieldContext, r *Rule) outcome {
	if !fc.sameAs(r.Field) {
		return fc.fail(r.Kind, "other", r.Field)
	}
	return outcomePass
}

func ruleDifferent(fc *fieldContext, r *Rule) outcome {
	if fc.sameAs(r.Field) {
		return fc.fail(r.Kind, "other", r.Field)
	}
	return outcomePass
}

// ruleConfirmed compares the field with "<path>_confirmation".
func ruleConfirmed(fc *fieldContext, r *Rule) outcome {
	if len(fc.path) > fc.v.cfg.MaxFieldLength {
		return fc.fail(r.Kind)
	}
	return fc.check(r.Kind, fc.sameAs(fc.path+confirmationSuffix))
}

// sameAs reports whether the field equals the value at path. Two absent
// values are equal; an absent value never equals a present one.
func (fc *fieldContext) sameAs(path string) bool {
	other, ok := fc.lookup(path)
	if !fc.present || !ok {
		return !fc.present && !ok
	}
	return value.Equal(fc.value, other)
}
