package validator

import (
	"time"
)

// parseDate tries each of dateFormats in order. The whole string must match.
func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, format := range dateFormats {
		if t, err := format.Parse(s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func ruleDate(fc *fieldContext, r *Rule) outcome {
	_, ok := parseDate(fc.value)
	return fc.check(r.Kind, ok)
}

func ruleDateFormat(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	if !ok {
		return fc.fail(r.Kind)
	}
	_, err := r.Date.Parse(s)
	return fc.check(r.Kind, err == nil)
}

// ruleDateCompare handles after, before, after_or_equal and before_or_equal.
// Both dates must parse.
func ruleDateCompare(fc *fieldContext, r *Rule) outcome {
	current, ok := parseDate(fc.value)
	if !ok {
		return fc.fail(r.Kind, "other", r.Field)
	}
	other, _ := fc.lookup(r.Field)
	reference, ok := parseDate(other)
	if !ok {
		return fc.fail(r.Kind, "other", r.Field)
	}

	cmp := current.Compare(reference)
	var pass bool
	switch r.Kind {
	case RuleAfter:
		pass = cmp > 0
	case RuleBefore:
		pass = cmp < 0
	case RuleAfterOrEqual:
		pass = cmp >= 0
	case RuleBeforeOrEqual:
		pass = cmp <= 0
	}
	if !pass {
		return fc.fail(r.Kind, "other", r.Field)
	}
	return outcomePass
}
