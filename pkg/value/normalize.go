package value

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// maxNormalizeDepth stops Normalize from following self-referencing containers.
const maxNormalizeDepth = 512

// number is satisfied by json.Number from encoding/json and goccy/go-json.
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

// Normalize converts v into the canonical data model. Containers are copied
// only when one of their descendants changes, so an already normalized tree is
// returned as is and the caller's data is never mutated.
func Normalize(v any) any {
	out, _ := normalize(v, 0)
	return out
}

func normalize(v any, depth int) (any, bool) {
	if depth > maxNormalizeDepth {
		return v, false
	}

	switch t := v.(type) {
	case nil, bool, int64, float64, string:
		return v, false
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint:
		return normalizeUint(uint64(t)), true
	case uint64:
		return normalizeUint(t), true
	case float32:
		return float64(t), true
	case []byte:
		return string(t), true
	case number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}
		if f, err := t.Float64(); err == nil {
			return f, true
		}
		return t.String(), true
	case []any:
		return normalizeList(t, depth)
	case map[string]any:
		return normalizeMap(t, depth)
	}

	return normalizeReflect(reflect.ValueOf(v), depth)
}

func normalizeUint(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

func normalizeList(list []any, depth int) (any, bool) {
	var out []any
	for i, item := range list {
		n, changed := normalize(item, depth+1)
		if changed && out == nil {
			out = make([]any, len(list))
			copy(out, list)
		}
		if out != nil {
			out[i] = n
		}
	}
	if out == nil {
		return list, false
	}
	return out, true
}

func normalizeMap(m map[string]any, depth int) (any, bool) {
	var out map[string]any
	for k, item := range m {
		n, changed := normalize(item, depth+1)
		if changed && out == nil {
			out = make(map[string]any, len(m))
			for ck, cv := range m {
				out[ck] = cv
			}
		}
		if out != nil {
			out[k] = n
		}
	}
	if out == nil {
		return m, false
	}
	return out, true
}

func normalizeReflect(rv reflect.Value, depth int) (any, bool) {
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return normalizeUint(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		return rv.String(), true
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, true
		}
		elem := rv.Elem()
		if elem.Kind() == reflect.Struct {
			return rv.Interface(), false
		}
		n, _ := normalize(elem.Interface(), depth+1)
		return n, true
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}, true
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i], _ = normalize(rv.Index(i).Interface(), depth+1)
		}
		return out, true
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			item, _ := normalize(iter.Value().Interface(), depth+1)
			out[mapKey(iter.Key())] = item
		}
		return out, true
	}

	return rv.Interface(), false
}

func mapKey(k reflect.Value) string {
	switch k.Kind() {
	case reflect.String:
		return k.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10)
	}
	return fmt.Sprint(k.Interface())
}
