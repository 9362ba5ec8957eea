package validator

// ruleRegex fails for non-strings and for patterns that do not compile.
func ruleRegex(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	if !ok {
		return fc.fail(r.Kind)
	}
	if _, ok := fc.v.patterns.Get(r.Pattern); !ok {
		return fc.fail(r.Kind)
	}
	return fc.check(r.Kind, fc.v.patterns.MatchContext(fc.ctx, r.Pattern, s))
}

// ruleNotRegex treats non-strings and invalid patterns as non-matching.
func ruleNotRegex(fc *fieldContext, r *Rule) outcome {
	s, ok := fc.str()
	if !ok {
		return outcomePass
	}
	return fc.check(r.Kind, !fc.v.patterns.MatchContext(fc.ctx, r.Pattern, s))
}
