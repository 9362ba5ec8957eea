package validator

import "github.com/dmitrymomot/signalforge/pkg/value"

// ruleIn fails for absent values. Membership uses loose equality, so "1"
// matches 1.
func ruleIn(fc *fieldContext, r *Rule) outcome {
	return fc.check(r.Kind, fc.present && value.Contains(r.Values, fc.value))
}

func ruleNotIn(fc *fieldContext, r *Rule) outcome {
	if !fc.present {
		return outcomePass
	}
	return fc.check(r.Kind, !value.Contains(r.Values, fc.value))
}
