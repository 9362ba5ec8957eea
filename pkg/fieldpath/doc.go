// Package fieldpath resolves dot-notation paths such as "user.address.city"
// or "items.2.name" against a normalized value tree, and expands wildcard
// patterns such as "items.*.name" into the concrete paths present in the data.
//
// Expansion walks caller-controlled data, so it is bounded by Limits: branches
// deeper than MaxDepth segments or longer than MaxPathLength bytes are dropped
// silently and reported through the truncated flag. Map keys are visited in
// sorted order so that results are deterministic.
package fieldpath
