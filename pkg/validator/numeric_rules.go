package validator

import "github.com/dmitrymomot/signalforge/pkg/value"

// Numeric comparisons accept integers, floats and numeric strings. Any other
// value fails without a "value" parameter.

func ruleGt(fc *fieldContext, r *Rule) outcome {
	return fc.compareNumber(r, func(n, limit float64) bool { return n > limit })
}

func ruleGte(fc *fieldContext, r *Rule) outcome {
	return fc.compareNumber(r, func(n, limit float64) bool { return n >= limit })
}

func ruleLt(fc *fieldContext, r *Rule) outcome {
	return fc.compareNumber(r, func(n, limit float64) bool { return n < limit })
}

func ruleLte(fc *fieldContext, r *Rule) outcome {
	return fc.compareNumber(r, func(n, limit float64) bool { return n <= limit })
}

func (fc *fieldContext) compareNumber(r *Rule, ok func(n, limit float64) bool) outcome {
	n, numeric := value.AsFloat(fc.value)
	if !numeric {
		return fc.fail(r.Kind)
	}
	if !ok(n, float64(r.Size)) {
		return fc.fail(r.Kind, "value", r.Size)
	}
	return outcomePass
}
