package emit

import (
	"strconv"
	"strings"

	"github.com/djohn49/fastregex/nfa"
	"github.com/djohn49/fastregex/token"
)

// condExpr compiles a Condition into a Go boolean expression over the rune
// variable r, following §4.E's numeric semantics: paired inclusive
// comparisons for ranges, equality for single characters, a runtime
// category lookup for Unicode classes, and negation wrapping for negated
// classes.
func condExpr(c nfa.Condition) string {
	var base string
	switch c.Kind {
	case nfa.CondAnyChar:
		return "true"
	case nfa.CondLiteral:
		base = "r == " + strconv.QuoteRune(c.Literal)
	case nfa.CondCharClass:
		base = rangesExpr(c.Ranges)
	case nfa.CondUnicodeClass:
		base = "unicat.MatchAny(" + categorySlice(c.Category) + ", r)"
	default:
		base = "false"
	}
	if c.Negated {
		return "!(" + base + ")"
	}
	return base
}

// rangesExpr compiles an ordered set of inclusive ranges into a
// disjunction of paired comparisons: single-code-point ranges compile to
// an equality check, wider ranges to "r >= lo && r <= hi".
func rangesExpr(ranges []token.Range) string {
	parts := make([]string, len(ranges))
	for i, rg := range ranges {
		if rg.Lo == rg.Hi {
			parts[i] = "r == " + strconv.QuoteRune(rg.Lo)
		} else {
			parts[i] = "(r >= " + strconv.QuoteRune(rg.Lo) + " && r <= " + strconv.QuoteRune(rg.Hi) + ")"
		}
	}
	return strings.Join(parts, " || ")
}

func categorySlice(categories []string) string {
	quoted := make([]string, len(categories))
	for i, c := range categories {
		quoted[i] = strconv.Quote(c)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}
