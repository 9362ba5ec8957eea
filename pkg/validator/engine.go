package validator

import (
	"context"

	"github.com/dmitrymomot/signalforge/pkg/fieldpath"
	"github.com/dmitrymomot/signalforge/pkg/logger"
	"github.com/dmitrymomot/signalforge/pkg/value"
)

type outcome uint8

const (
	outcomePass outcome = iota
	outcomeFail
	outcomeSkip
)

type evaluator func(fc *fieldContext, r *Rule) outcome

var evaluators = [ruleKindCount]evaluator{
	RuleRequired: ruleRequired,
	RuleNullable: ruleNullable,
	RuleFilled:   ruleFilled,
	RulePresent:  rulePresent,
	RuleBail:     ruleBail,

	RuleString:  ruleString,
	RuleInteger: ruleInteger,
	RuleNumeric: ruleNumeric,
	RuleBoolean: ruleBoolean,
	RuleArray:   ruleArray,

	RuleMin:        ruleMin,
	RuleMax:        ruleMax,
	RuleBetween:    ruleBetween,
	RuleRegex:      ruleRegex,
	RuleNotRegex:   ruleNotRegex,
	RuleAlpha:      ruleAlpha,
	RuleAlphaNum:   ruleAlphaNum,
	RuleAlphaDash:  ruleAlphaDash,
	RuleLowercase:  ruleLowercase,
	RuleUppercase:  ruleUppercase,
	RuleStartsWith: ruleStartsWith,
	RuleEndsWith:   ruleEndsWith,
	RuleContains:   ruleContains,

	RuleGt:  ruleGt,
	RuleGte: ruleGte,
	RuleLt:  ruleLt,
	RuleLte: ruleLte,

	RuleDistinct: ruleDistinct,

	RuleEmail:         ruleEmail,
	RuleURL:           ruleURL,
	RuleIP:            ruleIP,
	RuleUUID:          ruleUUID,
	RuleJSON:          ruleJSON,
	RuleDate:          ruleDate,
	RuleDateFormat:    ruleDateFormat,
	RuleAfter:         ruleDateCompare,
	RuleBefore:        ruleDateCompare,
	RuleAfterOrEqual:  ruleDateCompare,
	RuleBeforeOrEqual: ruleDateCompare,

	RuleIn:        ruleIn,
	RuleNotIn:     ruleNotIn,
	RuleSame:      ruleSame,
	RuleDifferent: ruleDifferent,
	RuleConfirmed: ruleConfirmed,

	RuleOIB:   ruleOIB,
	RulePhone: rulePhone,
	RuleIBAN:  ruleIBAN,
	RuleVATEU: ruleVATEU,
}

// fieldContext is the state of one concrete field path during a validation.
type fieldContext struct {
	ctx  context.Context
	v    *Validator
	root any

	path    string
	value   any
	present bool

	nullable bool
	empty    bool
	bail     bool

	failed bool
	errors []ErrorEntry
}

func newFieldContext(ctx context.Context, v *Validator, fr *FieldRules, f fieldpath.Field, root any) *fieldContext {
	return &fieldContext{
		ctx:      ctx,
		v:        v,
		root:     root,
		path:     f.Path,
		value:    f.Value,
		present:  f.Present,
		nullable: fr.hasNullable,
		empty:    !f.Present || value.IsEmpty(f.Value),
		bail:     fr.hasBail,
	}
}

// run executes rules in order and reports whether the field must stop. A skip
// ends the current list only; a failure ends the field when bail is set.
func (fc *fieldContext) run(rules []Rule) bool {
	for i := range rules {
		r := &rules[i]

		if r.Kind == RuleWhen {
			branch := r.When.Else
			if fc.v.cond.EvaluateContext(fc.ctx, r.When.Condition, fc.value, fc.root, fc.path) {
				branch = r.When.Then
			}
			if fc.run(branch) {
				return true
			}
			continue
		}

		switch fc.execute(r) {
		case outcomeFail:
			if fc.bail {
				return true
			}
		case outcomeSkip:
			return false
		}
	}
	return false
}

func (fc *fieldContext) execute(r *Rule) outcome {
	if fc.nullable && fc.empty && r.Kind.bypassable() {
		return outcomePass
	}
	eval := evaluators[r.Kind]
	if eval == nil {
		return outcomePass
	}
	return eval(fc, r)
}

// fail records an error for the current path. extra holds rule-specific
// parameters as alternating keys and values.
func (fc *fieldContext) fail(kind RuleKind, extra ...any) outcome {
	params := make(map[string]any, 1+len(extra)/2)
	params["field"] = fc.path
	for i := 0; i+1 < len(extra); i += 2 {
		if k, ok := extra[i].(string); ok {
			params[k] = extra[i+1]
		}
	}

	fc.failed = true
	fc.errors = append(fc.errors, ErrorEntry{Key: kind.ErrorKey(), Params: params})
	fc.v.observer.RuleFailed(fc.path, kind.String())
	fc.v.logger.DebugContext(fc.ctx, "rule failed", logger.Field(fc.path), logger.Rule(kind.String()))
	return outcomeFail
}

// check records a failure of kind unless ok holds.
func (fc *fieldContext) check(kind RuleKind, ok bool) outcome {
	if ok {
		return outcomePass
	}
	return fc.fail(kind)
}

// str returns the value as a string. The second result is false for any
// other type, including an absent value.
func (fc *fieldContext) str() (string, bool) {
	s, ok := fc.value.(string)
	return s, ok && fc.present
}

// lookup resolves another field against the validated payload.
func (fc *fieldContext) lookup(path string) (any, bool) {
	return fieldpath.Resolve(path, fc.root)
}
