// Package value implements the generic tree-shaped data model consumed by the
// validation engine: nil, bool, int64, float64, string, []any and
// map[string]any.
//
// Callers may pass typed Go values (for example []string, map[string]int or
// uint16); Normalize converts them into the canonical representation once, so
// the rest of the engine only switches over the model types.
//
// # Semantics
//
// The helpers use loose semantics in which "5" and 5 compare equal:
//
//   - IsEmpty: nil, false, "" and zero-length containers are empty.
//   - Compare: three-way comparison where numeric strings compare numerically.
//   - Size: character count for strings, element count for containers and the
//     literal number for numerics.
//   - CanonicalString: the textual form used for duplicate detection.
//
// UTF-8 handling is strict: ValidUTF8 rejects overlong encodings and
// surrogates, and CharCount counts code points.
package value
