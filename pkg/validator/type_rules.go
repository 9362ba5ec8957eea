package validator

import (
	"strings"

	"github.com/dmitrymomot/signalforge/pkg/value"
)

func ruleString(fc *fieldContext, r *Rule) outcome {
	_, ok := fc.str()
	return fc.check(r.Kind, ok)
}

// ruleInteger accepts integers and strings holding a complete base-10
// integer, optionally padded with spaces or tabs.
func ruleInteger(fc *fieldContext, r *Rule) outcome {
	switch v := fc.value.(type) {
	case int64:
		return outcomePass
	case string:
		_, ok := value.ParseInteger(v)
		return fc.check(r.Kind, ok)
	}
	return fc.fail(r.Kind)
}

func ruleNumeric(fc *fieldContext, r *Rule) outcome {
	switch v := fc.value.(type) {
	case int64, float64:
		return outcomePass
	case string:
		_, ok := value.ParseNumeric(v)
		return fc.check(r.Kind, ok)
	}
	return fc.fail(r.Kind)
}

// ruleBoolean accepts true, false, 0, 1, "0", "1" and "true"/"false" in any
// case.
func ruleBoolean(fc *fieldContext, r *Rule) outcome {
	switch v := fc.value.(type) {
	case bool:
		return outcomePass
	case int64:
		return fc.check(r.Kind, v == 0 || v == 1)
	case string:
		ok := v == "0" || v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "false")
		return fc.check(r.Kind, ok)
	}
	return fc.fail(r.Kind)
}

func ruleArray(fc *fieldContext, r *Rule) outcome {
	return fc.check(r.Kind, fc.present && value.KindOf(fc.value).IsContainer())
}
