package nfa

import (
	"fmt"

	"github.com/djohn49/fastregex/ast"
	"github.com/djohn49/fastregex/token"
)

// BuildError is raised when a pattern's repetition bounds or nesting depth
// exceed the compiler's configured limits. The AST itself cannot be
// structurally invalid by the time it reaches the builder (§7: "every
// well-formed AST compiles"), so this is the only failure mode here.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string { return "nfa build error: " + e.Message }

// BuildConfig bounds pathological repetition/recursion during
// construction (SPEC_FULL.md §5, "Compile-time limits").
type BuildConfig struct {
	MaxRepeat         int // maximum min/max value accepted in a single Rep node
	MaxRecursionDepth int // maximum AST nesting depth
}

// DefaultBuildConfig returns the limits used when none are supplied.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{MaxRepeat: 1000, MaxRecursionDepth: 100}
}

// Builder constructs an NFA from an AST root via Thompson-style
// construction with ε-transitions (§4.C). Each Builder is single-use: call
// Build once to obtain the finished NFA.
type Builder struct {
	states []State
	cfg    BuildConfig
	depth  int
}

// NewBuilder creates a Builder with the given limits.
func NewBuilder(cfg BuildConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Build constructs the NFA for root (which may be nil, meaning "matches
// only the empty string") and returns it, or a BuildError if a limit was
// exceeded.
func Build(root *ast.Node, cfg BuildConfig) (*NFA, error) {
	b := NewBuilder(cfg)
	terminal := b.alloc("match", nil)
	start, err := b.build(root, terminal)
	if err != nil {
		return nil, err
	}
	return &NFA{
		States:   b.states,
		Starts:   map[StateID]struct{}{start: {}},
		Terminal: map[StateID]struct{}{terminal: {}},
	}, nil
}

func (b *Builder) alloc(label string, transitions []Transition) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{ID: id, Label: label, Transitions: transitions})
	return id
}

func (b *Builder) addTransition(id StateID, t Transition) {
	b.states[id].Transitions = append(b.states[id].Transitions, t)
}

// build is the recursive Thompson construction function: it produces
// states for node and guarantees that entering the returned state id and
// walking transitions consistent with node's language leads to target,
// with no transition escaping to anywhere else.
func (b *Builder) build(node *ast.Node, target StateID) (StateID, error) {
	if node == nil {
		// Empty sequence: contributes nothing.
		return target, nil
	}

	b.depth++
	defer func() { b.depth-- }()
	if b.depth > b.cfg.MaxRecursionDepth {
		return 0, &BuildError{Message: fmt.Sprintf("AST nesting exceeds max recursion depth %d", b.cfg.MaxRecursionDepth)}
	}

	switch node.Kind {
	case ast.AnyChar:
		return b.alloc("AnyChar", []Transition{{Target: target, Condition: Condition{Kind: CondAnyChar}}}), nil
	case ast.Literal:
		return b.alloc(fmt.Sprintf("Literal(%q)", node.Literal),
			[]Transition{{Target: target, Condition: Condition{Kind: CondLiteral, Literal: node.Literal}}}), nil
	case ast.CharClass:
		return b.alloc("CharClass",
			[]Transition{{Target: target, Condition: Condition{Kind: CondCharClass, Ranges: node.Ranges, Negated: node.Negated}}}), nil
	case ast.UnicodeClass:
		return b.alloc("UnicodeClass",
			[]Transition{{Target: target, Condition: Condition{Kind: CondUnicodeClass, Category: node.Category, Negated: node.Negated}}}), nil
	case ast.Concat:
		return b.buildConcat(node.Children, target)
	case ast.Alt:
		return b.buildAlt(node.Children, target)
	case ast.Rep:
		return b.buildRep(node, target)
	default:
		return 0, &BuildError{Message: fmt.Sprintf("unknown AST node kind %v", node.Kind)}
	}
}

// buildConcat recurses right-to-left: the target for e_i is the entry of
// e_{i+1}.
func (b *Builder) buildConcat(children []*ast.Node, target StateID) (StateID, error) {
	cur := target
	for i := len(children) - 1; i >= 0; i-- {
		entry, err := b.build(children[i], cur)
		if err != nil {
			return 0, err
		}
		cur = entry
	}
	return cur, nil
}

// buildAlt allocates one split state with an ε-transition per branch; each
// branch is built against the same outer target.
func (b *Builder) buildAlt(branches []*ast.Node, target StateID) (StateID, error) {
	s := b.alloc("Alt", nil)
	for _, branch := range branches {
		entry, err := b.build(branch, target)
		if err != nil {
			return 0, err
		}
		b.addTransition(s, Transition{Target: entry, Condition: Condition{Kind: CondEpsilon}})
	}
	return s, nil
}

// buildRep implements §4.C's repetition construction, covering the
// unbounded and bounded-max cases (including the min=0 specializations).
func (b *Builder) buildRep(node *ast.Node, target StateID) (StateID, error) {
	min, max := node.Min, node.Max
	if min > b.cfg.MaxRepeat || (max != token.Unbounded && max > b.cfg.MaxRepeat) {
		return 0, &BuildError{Message: fmt.Sprintf("repetition bound exceeds max %d", b.cfg.MaxRepeat)}
	}

	if min == 0 && max == 0 {
		return target, nil
	}

	if max == token.Unbounded {
		return b.buildUnboundedRep(node.Base, min, target)
	}
	return b.buildBoundedRep(node.Base, min, max, target)
}

// buildUnboundedRep handles max = ∞: min mandatory copies chained into a
// loop head L; from L, one more copy of base self-loops back to L, and L
// also has an ε-transition out to target.
func (b *Builder) buildUnboundedRep(base *ast.Node, min int, target StateID) (StateID, error) {
	loopHead := b.alloc("RepLoop", []Transition{{Target: target, Condition: Condition{Kind: CondEpsilon}}})

	selfLoop, err := b.build(base, loopHead)
	if err != nil {
		return 0, err
	}
	b.addTransition(loopHead, Transition{Target: selfLoop, Condition: Condition{Kind: CondEpsilon}})

	if min == 0 {
		return loopHead, nil
	}

	cur := loopHead
	for i := 0; i < min; i++ {
		entry, err := b.build(base, cur)
		if err != nil {
			return 0, err
		}
		cur = entry
	}
	return cur, nil
}

// buildBoundedRep handles a finite max: min mandatory copies, then
// (max-min) optional copies, each of which can skip straight to target.
func (b *Builder) buildBoundedRep(base *ast.Node, min, max int, target StateID) (StateID, error) {
	cur := target
	for i := 0; i < max-min; i++ {
		skip := b.alloc("RepOptional", []Transition{{Target: cur, Condition: Condition{Kind: CondEpsilon}}})
		entry, err := b.build(base, cur)
		if err != nil {
			return 0, err
		}
		b.addTransition(skip, Transition{Target: entry, Condition: Condition{Kind: CondEpsilon}})
		cur = skip
	}
	for i := 0; i < min; i++ {
		entry, err := b.build(base, cur)
		if err != nil {
			return 0, err
		}
		cur = entry
	}
	return cur, nil
}
