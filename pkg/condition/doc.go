// Package condition parses and evaluates the boolean expressions used by the
// when rule.
//
// Wire format:
//
//	["and", cond, cond, ...]        all children must hold (empty: true)
//	["or", cond, cond, ...]         one child must hold (empty: false)
//	["@length", ">=", 3]            character or element count of the field
//	["@value", "in", ["a", "b"]]    the field value itself
//	["@type", "=", "string"]        null, boolean, integer, double, string, array, object
//	["@empty"] / ["@filled"]        emptiness of the field value
//	["@matches", "/^\\d+$/"]        regular expression search on the field value
//	["country", "=", "HR"]          any other name refers to another field by path
//
// Operators are =, !=, >, >=, <, <=, in, not_in, filled, empty and matches.
// A missing or unknown operator means =, a missing value means null.
// Children of and/or that are not well-formed conditions are skipped.
package condition
