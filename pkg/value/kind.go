package value

import "reflect"

// Kind classifies a value of the data model.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
	KindObject
	KindUnknown
)

var kindNames = [...]string{
	KindNull:    "null",
	KindBool:    "boolean",
	KindInt:     "integer",
	KindFloat:   "double",
	KindString:  "string",
	KindList:    "array",
	KindMap:     "array",
	KindObject:  "object",
	KindUnknown: "unknown",
}

// String returns the type name reported by the @type condition subject.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsNumeric reports whether the kind is an integer or a float.
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// IsContainer reports whether the kind is a list or a map.
func (k Kind) IsContainer() bool {
	return k == KindList || k == KindMap
}

// KindOf classifies v. Values that are not normalized are classified by their
// reflect kind, so KindOf([]string{}) is KindList.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int64, int, int8, int16, int32, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float64, float32:
		return KindFloat
	case string:
		return KindString
	case []any:
		return KindList
	case map[string]any:
		return KindMap
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return KindList
	case reflect.Map:
		return KindMap
	case reflect.Struct, reflect.Pointer, reflect.Interface:
		return KindObject
	default:
		return KindUnknown
	}
}

// TypeName returns the type name of v as reported by the @type subject.
func TypeName(v any) string {
	return KindOf(v).String()
}
