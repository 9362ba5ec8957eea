package fieldpath

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/signalforge/pkg/value"
)

const (
	// Separator splits path segments.
	Separator = "."
	// Wildcard matches every key of a map or every index of a list.
	Wildcard = "*"

	DefaultMaxDepth      = 32
	DefaultMaxPathLength = 8192
)

// Limits bound wildcard expansion.
type Limits struct {
	MaxDepth      int
	MaxPathLength int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:      DefaultMaxDepth,
		MaxPathLength: DefaultMaxPathLength,
	}
}

func (l Limits) withDefaults() Limits {
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultMaxDepth
	}
	if l.MaxPathLength <= 0 {
		l.MaxPathLength = DefaultMaxPathLength
	}
	return l
}

// Field is one concrete path produced by Expand. Present is false when the
// final segment does not exist in the data.
type Field struct {
	Path    string
	Value   any
	Present bool
}

// HasWildcard reports whether pattern contains a wildcard segment.
func HasWildcard(pattern string) bool {
	return strings.Contains(pattern, Wildcard)
}

// Resolve looks up path in root. The second result is false when any segment
// is missing or an intermediate segment is not a container.
func Resolve(path string, root any) (any, bool) {
	current := root
	for segment := range strings.SplitSeq(path, Separator) {
		next, ok := child(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// child returns the entry named segment: a key of a map or, when the segment
// is a base-10 integer, an index of a list.
func child(node any, segment string) (any, bool) {
	switch t := node.(type) {
	case map[string]any:
		v, ok := t[segment]
		return v, ok
	case []any:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= len(t) {
			return nil, false
		}
		return t[i], true
	}
	return nil, false
}

// Expand turns pattern into the concrete fields present in root. A pattern
// without wildcards yields exactly one field. The truncated result reports
// whether any branch was dropped by limits.
func Expand(pattern string, root any, limits Limits) (fields []Field, truncated bool) {
	if !HasWildcard(pattern) {
		v, ok := Resolve(pattern, root)
		return []Field{{Path: pattern, Value: v, Present: ok}}, false
	}

	e := expander{limits: limits.withDefaults()}
	e.walk(strings.Split(pattern, Separator), root, "", 0)
	return e.fields, e.truncated
}

type expander struct {
	limits    Limits
	fields    []Field
	truncated bool
}

// walk consumes one segment per call, starting at depth 0. Calls deeper than
// MaxDepth are dropped. node must be a container; for the final segment the
// child is emitted whether or not it exists.
func (e *expander) walk(segments []string, node any, prefix string, depth int) {
	if depth > e.limits.MaxDepth {
		e.truncated = true
		return
	}

	kind := value.KindOf(node)
	if !kind.IsContainer() {
		return
	}

	segment, rest := segments[0], segments[1:]
	if segment != Wildcard {
		e.descend(rest, node, prefix, segment, depth)
		return
	}

	switch t := node.(type) {
	case []any:
		for i := range t {
			e.descend(rest, node, prefix, strconv.Itoa(i), depth)
		}
	case map[string]any:
		for _, key := range value.SortedKeys(t) {
			e.descend(rest, node, prefix, key, depth)
		}
	}
}

func (e *expander) descend(rest []string, node any, prefix, key string, depth int) {
	path := key
	if prefix != "" {
		path = prefix + Separator + key
	}
	if len(path) > e.limits.MaxPathLength {
		e.truncated = true
		return
	}

	next, ok := child(node, key)
	if len(rest) == 0 {
		e.fields = append(e.fields, Field{Path: path, Value: next, Present: ok})
		return
	}
	if !ok {
		return
	}
	e.walk(rest, next, path, depth+1)
}
