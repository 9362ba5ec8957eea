package condition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/signalforge/pkg/value"
)

// DefaultMaxDepth bounds and/or nesting.
const DefaultMaxDepth = 64

// Parse builds a condition from its wire format using DefaultMaxDepth.
func Parse(spec any) (*Condition, error) {
	return ParseWithDepth(spec, DefaultMaxDepth)
}

// ParseWithDepth builds a condition allowing at most maxDepth levels of
// and/or nesting.
func ParseWithDepth(spec any, maxDepth int) (*Condition, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return parse(value.Normalize(spec), 0, maxDepth)
}

func parse(spec any, depth, maxDepth int) (*Condition, error) {
	if depth >= maxDepth {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooDeep, maxDepth)
	}

	list, ok := spec.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list, got %s", ErrInvalidCondition, value.TypeName(spec))
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrInvalidCondition)
	}
	head, ok := list[0].(string)
	if !ok {
		return nil, fmt.Errorf("%w: first element must be a string", ErrInvalidCondition)
	}

	switch head {
	case "and":
		return parseCompound(KindAnd, list[1:], depth, maxDepth)
	case "or":
		return parseCompound(KindOr, list[1:], depth, maxDepth)
	}

	if strings.HasPrefix(head, "@") {
		return parseSelf(head, list)
	}

	c := &Condition{Kind: KindSimple, Subject: SubjectField, Field: head}
	parseOperands(c, list)
	return c, nil
}

// parseCompound skips malformed children, but a nesting violation fails the
// whole condition.
func parseCompound(kind Kind, items []any, depth, maxDepth int) (*Condition, error) {
	c := &Condition{Kind: kind, Children: make([]*Condition, 0, len(items))}
	for _, item := range items {
		if _, ok := item.([]any); !ok {
			continue
		}
		child, err := parse(item, depth+1, maxDepth)
		if err != nil {
			if errors.Is(err, ErrTooDeep) {
				return nil, err
			}
			continue
		}
		c.Children = append(c.Children, child)
	}
	return c, nil
}

func parseSelf(head string, list []any) (*Condition, error) {
	subject, ok := subjectNames[head]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, head)
	}

	c := &Condition{Kind: KindSimple, Subject: subject}
	switch subject {
	case SubjectEmpty:
		c.Operator = OpEmpty
	case SubjectFilled:
		c.Operator = OpFilled
	case SubjectMatches:
		c.Operator = OpMatches
		if len(list) > 1 {
			if p, ok := list[1].(string); ok {
				c.Value = p
			}
		}
	default:
		parseOperands(c, list)
	}
	return c, nil
}

// parseOperands reads the optional operator at index 1 and value at index 2.
func parseOperands(c *Condition, list []any) {
	if len(list) > 1 {
		if op, ok := list[1].(string); ok {
			c.Operator = parseOperator(op)
		}
	}
	if c.Operator == OpFilled || c.Operator == OpEmpty {
		return
	}
	if len(list) > 2 {
		c.Value = list[2]
	}
}
