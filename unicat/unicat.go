// Package unicat is the Unicode general-category collaborator referenced by
// §6 of the specification: a name registry the lexer uses to validate
// \p{Name} / \pX escapes, plus the membership tests (In, MatchAny) that NFA
// simulation and emitted matchers call. It has no function that returns the
// category of a given code point.
//
// This is the one ambient concern in the module built directly on the
// standard library rather than on a dependency pulled from the example
// pack: no third-party general-category database appears anywhere in the
// pack, and unicode.Categories is the canonical table the Unicode Character
// Database itself is compiled from. See DESIGN.md for the full
// justification.
//
// This package targets the Unicode Character Database version bundled with
// Go 1.21 (Unicode 15.0), per §9's instruction to document the targeted
// version.
package unicat

import "unicode"

// Category is a Unicode general-category identifier, e.g. "Lu", "Nd".
type Category string

// names maps every general-category identifier this package recognizes —
// both the two-letter forms (Lu, Nd, ...) and the one-letter umbrella forms
// (L, N, ...) — to the range table backing it.
var names = buildNameTable()

func buildNameTable() map[string]*unicode.RangeTable {
	m := make(map[string]*unicode.RangeTable, len(unicode.Categories))
	for name, table := range unicode.Categories {
		m[name] = table
	}
	return m
}

// Lookup resolves a general-category identifier (e.g. "Lu", "L", "Nd") to
// its range table. ok is false if name is not a recognized category.
func Lookup(name string) (*unicode.RangeTable, bool) {
	t, ok := names[name]
	return t, ok
}

// IsValidName reports whether name is a recognized general-category
// identifier. Used by the lexer to produce "unknown Unicode category"
// errors at compile time rather than deferring to a runtime lookup miss.
func IsValidName(name string) bool {
	_, ok := names[name]
	return ok
}

// In reports whether r belongs to the named general category. The lexer
// never calls this (it only validates names); MatchAny calls it once per
// category, and MatchAny is what emitted matchers and
// nfa.Condition.Matches call at match time.
func In(name string, r rune) bool {
	t, ok := names[name]
	return ok && unicode.Is(t, r)
}

// MatchAny reports whether r belongs to any of the named categories. A
// UnicodeClass token's Category field may hold more than one category, all
// ORed together.
func MatchAny(categories []string, r rune) bool {
	for _, c := range categories {
		if In(c, r) {
			return true
		}
	}
	return false
}

// Shorthand category sets for the conventional escapes documented in
// SPEC_FULL.md §3. \d narrows to decimal digits only (Nd); \w and \s are not
// routed through this table: the lexer expands them to fixed ASCII
// CharClass tokens.
var shorthandCategories = map[rune][]string{
	'd': {"Nd"},
	'D': {"Nd"}, // negated by the lexer
}

// ShorthandCategories returns the general categories backing a \d / \D
// escape, or nil, false if r is not a category-based shorthand.
func ShorthandCategories(r rune) ([]string, bool) {
	cats, ok := shorthandCategories[r]
	return cats, ok
}
