package condition

// Kind discriminates simple and compound conditions.
type Kind uint8

const (
	KindSimple Kind = iota
	KindAnd
	KindOr
)

// Subject selects the value a simple condition is applied to.
type Subject uint8

const (
	SubjectValue Subject = iota
	SubjectLength
	SubjectType
	SubjectEmpty
	SubjectFilled
	SubjectMatches
	SubjectField
)

var subjectNames = map[string]Subject{
	"@value":   SubjectValue,
	"@length":  SubjectLength,
	"@type":    SubjectType,
	"@empty":   SubjectEmpty,
	"@filled":  SubjectFilled,
	"@matches": SubjectMatches,
}

var subjectLabels = [...]string{
	SubjectValue:   "@value",
	SubjectLength:  "@length",
	SubjectType:    "@type",
	SubjectEmpty:   "@empty",
	SubjectFilled:  "@filled",
	SubjectMatches: "@matches",
	SubjectField:   "field",
}

func (s Subject) String() string {
	if int(s) < len(subjectLabels) {
		return subjectLabels[s]
	}
	return "field"
}

// Operator compares the subject with the condition value.
type Operator uint8

const (
	OpEq Operator = iota
	OpNeq
	OpGt
	OpGte
	OpLt
	OpLte
	OpIn
	OpNotIn
	OpFilled
	OpEmpty
	OpMatches
)

var operatorNames = [...]string{
	OpEq:      "=",
	OpNeq:     "!=",
	OpGt:      ">",
	OpGte:     ">=",
	OpLt:      "<",
	OpLte:     "<=",
	OpIn:      "in",
	OpNotIn:   "not_in",
	OpFilled:  "filled",
	OpEmpty:   "empty",
	OpMatches: "matches",
}

func (o Operator) String() string {
	if int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return "="
}

// parseOperator maps an operator token, defaulting to OpEq.
func parseOperator(s string) Operator {
	for op, name := range operatorNames {
		if name == s {
			return Operator(op)
		}
	}
	return OpEq
}

// Condition is an immutable expression tree. Simple conditions use Subject,
// Field, Operator and Value; compound conditions use Children.
type Condition struct {
	Kind     Kind
	Subject  Subject
	Field    string
	Operator Operator
	Value    any
	Children []*Condition
}

// And returns a condition that holds when every child holds.
func And(children ...*Condition) *Condition {
	return &Condition{Kind: KindAnd, Children: children}
}

// Or returns a condition that holds when at least one child holds.
func Or(children ...*Condition) *Condition {
	return &Condition{Kind: KindOr, Children: children}
}

// Self returns a simple condition on the field's own value.
func Self(subject Subject, op Operator, v any) *Condition {
	return &Condition{Kind: KindSimple, Subject: subject, Operator: op, Value: v}
}

// Field returns a simple condition on another field, addressed by path.
func Field(path string, op Operator, v any) *Condition {
	return &Condition{Kind: KindSimple, Subject: SubjectField, Field: path, Operator: op, Value: v}
}
