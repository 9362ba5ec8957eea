// Package pattern compiles and memoizes the regular expressions used by the
// regex and not_regex rules and by the @matches condition.
//
// Patterns may be written Perl-style with delimiters and trailing flags, for
// example "/^[a-z]+$/i". Supported delimiters are / # ~ @ % and !, supported
// flags are i (ignore case), m (multiline), s (dot matches newline) and x
// (free spacing). Unknown flags are ignored and u is implied. The shorthand
// classes \d, \w and \s match ASCII characters only; use \p{..} classes for
// Unicode.
//
// A Cache belongs to one validator. It never evicts, remembers compile
// failures and is safe for concurrent use. Every match runs with a timeout so
// that catastrophic backtracking is reported as "no match" instead of
// consuming unbounded CPU.
//
// Usage:
//
//	cache := pattern.NewCache(pattern.WithMatchTimeout(50 * time.Millisecond))
//	if cache.Match("/^\\d{4}$/", "2024") {
//		// ...
//	}
package pattern
