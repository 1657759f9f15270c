package parser

import "github.com/djohn49/fastregex/token"

// partialKind identifies the transient, partially-parsed representation
// used between the lexer's token stream and the final AST (§3 "Partially-
// parsed node"). It never escapes this package.
type partialKind uint8

const (
	pLexed partialKind = iota
	pGroup
	pRepetition
	pAlternation
)

// partial is one node of the transient tree built by the staged passes
// (grouping, repetition binding, alternation binding) before lowering.
type partial struct {
	kind partialKind
	pos  int // byte offset, for error reporting

	tok token.Token // pLexed

	children []*partial // pGroup: sequence of siblings

	base     *partial // pRepetition
	min, max int

	parts []*partial // pAlternation
}
