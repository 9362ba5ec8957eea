package validator

import "github.com/dmitrymomot/signalforge/pkg/value"

// ruleDistinct requires the scalar elements of an array to be unique by their
// canonical string form. Nested arrays are ignored.
func ruleDistinct(fc *fieldContext, r *Rule) outcome {
	var items []any
	switch v := fc.value.(type) {
	case []any:
		items = v
	case map[string]any:
		items = make([]any, 0, len(v))
		for _, k := range value.SortedKeys(v) {
			items = append(items, v[k])
		}
	default:
		return fc.fail(r.Kind)
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key, ok := value.CanonicalString(item)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			return fc.fail(r.Kind)
		}
		seen[key] = struct{}{}
	}
	return outcomePass
}
