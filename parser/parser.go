// Package parser implements §4.B: grouping, repetition binding, alternation
// binding, and lowering to ast.Node, run in that fixed precedence order
// (tightest first) at every group level.
package parser

import (
	"github.com/djohn49/fastregex/ast"
	"github.com/djohn49/fastregex/token"
)

// Parse runs the full parser pipeline over a token stream and returns the
// AST root. A nil root (with a nil error) means the pattern matches only
// the empty string — this is how the grammar represents an empty
// concatenation, since ast.Concat requires length >= 2 and there is no
// dedicated "empty" AST variant.
func Parse(toks []token.Token) (*ast.Node, error) {
	top, err := group(toks)
	if err != nil {
		return nil, err
	}
	if err := bindLevel(top); err != nil {
		return nil, err
	}
	return lower(top), nil
}

// group is pass 1: recursive-descent grouping by parentheses.
func group(toks []token.Token) (*partial, error) {
	i := 0
	top, err := parseSequence(toks, &i, 0, false)
	if err != nil {
		return nil, err
	}
	return top, nil
}

func parseSequence(toks []token.Token, i *int, openPos int, nested bool) (*partial, error) {
	var children []*partial
	for *i < len(toks) {
		t := toks[*i]
		switch t.Kind {
		case token.CloseGroup:
			if !nested {
				return nil, &Error{Kind: ErrUnmatchedParen, Pos: t.Pos}
			}
			*i++
			return &partial{kind: pGroup, children: children, pos: openPos}, nil
		case token.OpenGroup:
			pos := t.Pos
			*i++
			child, err := parseSequence(toks, i, pos, true)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		default:
			children = append(children, &partial{kind: pLexed, tok: t, pos: t.Pos})
			*i++
		}
	}
	if nested {
		return nil, &Error{Kind: ErrUnmatchedParen, Pos: openPos}
	}
	return &partial{kind: pGroup, children: children, pos: 0}, nil
}

// bindLevel recursively applies repetition binding (pass 2) and alternation
// binding (pass 3) to g's children, at every group level (descending into
// nested pGroup children first).
func bindLevel(g *partial) error {
	for i, c := range g.children {
		if c.kind == pGroup {
			if err := bindLevel(c); err != nil {
				return err
			}
			g.children[i] = c
		}
	}

	bound, err := bindRepetitions(g.children)
	if err != nil {
		return err
	}

	final, err := bindAlternation(bound)
	if err != nil {
		return err
	}
	g.children = final
	return nil
}

// bindRepetitions implements pass 2: every Rep token binds to its
// immediately preceding sibling.
func bindRepetitions(children []*partial) ([]*partial, error) {
	out := make([]*partial, 0, len(children))
	for _, c := range children {
		if c.kind == pLexed && c.tok.Kind == token.Rep {
			if len(out) == 0 {
				return nil, &Error{Kind: ErrDanglingRepetition, Pos: c.pos}
			}
			prev := out[len(out)-1]
			if prev.kind == pRepetition {
				return nil, &Error{Kind: ErrRepetitionOfRepetition, Pos: c.pos}
			}
			if prev.kind == pLexed && prev.tok.Kind == token.Alt {
				return nil, &Error{Kind: ErrDanglingRepetition, Pos: c.pos}
			}
			out[len(out)-1] = &partial{
				kind: pRepetition, pos: prev.pos,
				base: prev, min: c.tok.Min, max: c.tok.Max,
			}
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// bindAlternation implements pass 3: split the sibling sequence on Alt
// tokens into non-empty partitions, wrapping each multi-element partition
// as an implicit sequence. If no Alt token is present at this level, the
// children are returned unchanged.
func bindAlternation(children []*partial) ([]*partial, error) {
	altPositions := make([]int, 0)
	for _, c := range children {
		if c.kind == pLexed && c.tok.Kind == token.Alt {
			altPositions = append(altPositions, c.tok.Pos)
		}
	}
	if len(altPositions) == 0 {
		return children, nil
	}

	var partitions [][]*partial
	var cur []*partial
	for _, c := range children {
		if c.kind == pLexed && c.tok.Kind == token.Alt {
			partitions = append(partitions, cur)
			cur = nil
			continue
		}
		cur = append(cur, c)
	}
	partitions = append(partitions, cur)

	parts := make([]*partial, 0, len(partitions))
	for i, p := range partitions {
		if len(p) == 0 {
			pos := altPositions[0]
			if i > 0 {
				pos = altPositions[i-1]
			}
			return nil, &Error{Kind: ErrEmptyAlternative, Pos: pos}
		}
		if len(p) == 1 {
			parts = append(parts, p[0])
		} else {
			parts = append(parts, &partial{kind: pGroup, children: p, pos: p[0].pos})
		}
	}
	return []*partial{{kind: pAlternation, parts: parts, pos: altPositions[0]}}, nil
}

// lower is pass 4: convert the bound partial tree into the final AST.
func lower(p *partial) *ast.Node {
	switch p.kind {
	case pLexed:
		return lowerToken(p.tok)
	case pGroup:
		children := make([]*ast.Node, len(p.children))
		for i, c := range p.children {
			children[i] = lower(c)
		}
		return ast.NewConcat(children)
	case pRepetition:
		return ast.NewRep(lower(p.base), p.min, p.max)
	case pAlternation:
		parts := make([]*ast.Node, len(p.parts))
		for i, a := range p.parts {
			parts[i] = lower(a)
		}
		return ast.NewAlt(parts)
	default:
		panic("parser: unreachable partial kind")
	}
}

func lowerToken(t token.Token) *ast.Node {
	switch t.Kind {
	case token.AnyChar:
		return &ast.Node{Kind: ast.AnyChar}
	case token.Literal:
		return &ast.Node{Kind: ast.Literal, Literal: t.Literal}
	case token.CharClass:
		return &ast.Node{Kind: ast.CharClass, Ranges: t.Ranges, Negated: t.Negated}
	case token.UnicodeClass:
		return &ast.Node{Kind: ast.UnicodeClass, Category: t.Category, Negated: t.Negated}
	default:
		panic("parser: unreachable token kind in lowering")
	}
}
