// Package ast defines the regex abstract syntax tree produced by the parser
// and consumed by the NFA builder (§3, §4.F).
package ast

import "github.com/djohn49/fastregex/token"

// Kind identifies which variant a Node holds.
type Kind uint8

const (
	// AnyChar matches any single code point.
	AnyChar Kind = iota
	// Literal matches exactly one code point.
	Literal
	// CharClass matches against an ordered set of inclusive ranges.
	CharClass
	// UnicodeClass matches against a set of Unicode general categories.
	UnicodeClass
	// Concat is an ordered sequence of length >= 2.
	Concat
	// Alt is a flat, unordered-semantics set of alternatives, length >= 2.
	// No Alt directly nests another Alt (nested Alts are flattened during
	// construction; see NewAlt).
	Alt
	// Rep is a repetition of a base node, min <= max (max may be
	// token.Unbounded).
	Rep
)

// Node is one entry of the regex AST. Only the fields relevant to Kind are
// meaningful.
type Node struct {
	Kind Kind

	Literal rune // Kind == Literal

	Ranges   []token.Range // Kind == CharClass
	Negated  bool          // Kind == CharClass or UnicodeClass
	Category []string      // Kind == UnicodeClass

	Children []*Node // Kind == Concat or Alt

	Base     *Node // Kind == Rep
	Min, Max int   // Kind == Rep
}

// NewConcat builds a Concat node, enforcing the "no length-1 Concat"
// invariant: a single child is returned unwrapped. An empty sequence
// returns nil, representing a regex that matches only the empty string
// (there is no dedicated "empty" AST variant; nil stands in for it
// throughout the builder).
func NewConcat(children []*Node) *Node {
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return &Node{Kind: Concat, Children: children}
	}
}

// NewAlt builds an Alt node, flattening any immediate Alt children and
// enforcing the "no singleton Alt" invariant.
func NewAlt(alternatives []*Node) *Node {
	flat := make([]*Node, 0, len(alternatives))
	for _, a := range alternatives {
		if a.Kind == Alt {
			flat = append(flat, a.Children...)
		} else {
			flat = append(flat, a)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Node{Kind: Alt, Children: flat}
}

// NewRep builds a Rep node over base.
func NewRep(base *Node, min, max int) *Node {
	return &Node{Kind: Rep, Base: base, Min: min, Max: max}
}

// Equal reports deep structural equality between two nodes. Used by tests
// that assert parser/lowering output.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AnyChar:
		return true
	case Literal:
		return a.Literal == b.Literal
	case CharClass:
		return a.Negated == b.Negated && rangesEqual(a.Ranges, b.Ranges)
	case UnicodeClass:
		return a.Negated == b.Negated && stringsEqual(a.Category, b.Category)
	case Concat, Alt:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	case Rep:
		return a.Min == b.Min && a.Max == b.Max && Equal(a.Base, b.Base)
	default:
		return false
	}
}

func rangesEqual(a, b []token.Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
