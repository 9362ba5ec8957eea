package validator

// RuleKind identifies a validation rule.
type RuleKind uint8

const (
	RuleInvalid RuleKind = iota

	// presence
	RuleRequired
	RuleNullable
	RuleFilled
	RulePresent
	RuleBail

	// type
	RuleString
	RuleInteger
	RuleNumeric
	RuleBoolean
	RuleArray

	// string and size
	RuleMin
	RuleMax
	RuleBetween
	RuleRegex
	RuleNotRegex
	RuleAlpha
	RuleAlphaNum
	RuleAlphaDash
	RuleLowercase
	RuleUppercase
	RuleStartsWith
	RuleEndsWith
	RuleContains

	// numeric
	RuleGt
	RuleGte
	RuleLt
	RuleLte

	// array
	RuleDistinct

	// format
	RuleEmail
	RuleURL
	RuleIP
	RuleUUID
	RuleJSON
	RuleDate
	RuleDateFormat
	RuleAfter
	RuleBefore
	RuleAfterOrEqual
	RuleBeforeOrEqual

	// comparison
	RuleIn
	RuleNotIn
	RuleSame
	RuleDifferent
	RuleConfirmed

	// regional
	RuleOIB
	RulePhone
	RuleIBAN
	RuleVATEU

	// conditional
	RuleWhen

	ruleKindCount
)

var ruleNames = [ruleKindCount]string{
	RuleInvalid:       "",
	RuleRequired:      "required",
	RuleNullable:      "nullable",
	RuleFilled:        "filled",
	RulePresent:       "present",
	RuleBail:          "bail",
	RuleString:        "string",
	RuleInteger:       "integer",
	RuleNumeric:       "numeric",
	RuleBoolean:       "boolean",
	RuleArray:         "array",
	RuleMin:           "min",
	RuleMax:           "max",
	RuleBetween:       "between",
	RuleRegex:         "regex",
	RuleNotRegex:      "not_regex",
	RuleAlpha:         "alpha",
	RuleAlphaNum:      "alpha_num",
	RuleAlphaDash:     "alpha_dash",
	RuleLowercase:     "lowercase",
	RuleUppercase:     "uppercase",
	RuleStartsWith:    "starts_with",
	RuleEndsWith:      "ends_with",
	RuleContains:      "contains",
	RuleGt:            "gt",
	RuleGte:           "gte",
	RuleLt:            "lt",
	RuleLte:           "lte",
	RuleDistinct:      "distinct",
	RuleEmail:         "email",
	RuleURL:           "url",
	RuleIP:            "ip",
	RuleUUID:          "uuid",
	RuleJSON:          "json",
	RuleDate:          "date",
	RuleDateFormat:    "date_format",
	RuleAfter:         "after",
	RuleBefore:        "before",
	RuleAfterOrEqual:  "after_or_equal",
	RuleBeforeOrEqual: "before_or_equal",
	RuleIn:            "in",
	RuleNotIn:         "not_in",
	RuleSame:          "same",
	RuleDifferent:     "different",
	RuleConfirmed:     "confirmed",
	RuleOIB:           "oib",
	RulePhone:         "phone",
	RuleIBAN:          "iban",
	RuleVATEU:         "vat_eu",
	RuleWhen:          "when",
}

var ruleLookup = func() map[string]RuleKind {
	m := make(map[string]RuleKind, len(ruleNames))
	for kind, name := range ruleNames {
		if name != "" {
			m[name] = RuleKind(kind)
		}
	}
	return m
}()

// LookupRule returns the kind registered under name.
func LookupRule(name string) (RuleKind, bool) {
	kind, ok := ruleLookup[name]
	return kind, ok
}

// String returns the rule name as used in rule specifications.
func (k RuleKind) String() string {
	if k < ruleKindCount {
		return ruleNames[k]
	}
	return ""
}

// ErrorKey returns the error key reported when a rule of this kind fails.
func (k RuleKind) ErrorKey() string {
	return "validation." + k.String()
}

// bypassable reports whether the nullable bypass applies to the kind.
func (k RuleKind) bypassable() bool {
	switch k {
	case RuleRequired, RuleNullable, RuleFilled, RulePresent, RuleBail, RuleWhen:
		return false
	}
	return true
}

// RuleNames returns every supported rule name in declaration order.
func RuleNames() []string {
	names := make([]string, 0, len(ruleNames)-1)
	for _, name := range ruleNames {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
