package validator

import "github.com/dmitrymomot/signalforge/pkg/value"

func ruleRequired(fc *fieldContext, r *Rule) outcome {
	return fc.check(r.Kind, !fc.empty)
}

// ruleNullable stops the field when its value is null or empty.
func ruleNullable(fc *fieldContext, _ *Rule) outcome {
	if fc.empty {
		return outcomeSkip
	}
	return outcomePass
}

// ruleFilled only applies to present fields.
func ruleFilled(fc *fieldContext, r *Rule) outcome {
	if !fc.present {
		return outcomeSkip
	}
	return fc.check(r.Kind, !value.IsEmpty(fc.value))
}

func rulePresent(fc *fieldContext, r *Rule) outcome {
	return fc.check(r.Kind, fc.present)
}

func ruleBail(*fieldContext, *Rule) outcome {
	return outcomePass
}
