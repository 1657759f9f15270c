// Package nfa implements the shared NFA/State/Transition types (§3, §4.F)
// and the Thompson-style builder that constructs an NFA from an AST
// (§4.C).
package nfa

import (
	"fmt"

	"github.com/djohn49/fastregex/token"
	"github.com/djohn49/fastregex/unicat"
)

// StateID identifies a state within an NFA's dense id space.
type StateID uint32

// ConditionKind identifies which variant a Condition holds.
type ConditionKind uint8

const (
	// CondAnyChar matches any single code point.
	CondAnyChar ConditionKind = iota
	// CondLiteral matches exactly one code point.
	CondLiteral
	// CondCharClass matches against inclusive ranges.
	CondCharClass
	// CondUnicodeClass matches against Unicode general categories.
	CondUnicodeClass
	// CondEpsilon consumes no input. Only present before simplification.
	CondEpsilon
)

func (k ConditionKind) String() string {
	switch k {
	case CondAnyChar:
		return "AnyChar"
	case CondLiteral:
		return "Literal"
	case CondCharClass:
		return "CharClass"
	case CondUnicodeClass:
		return "UnicodeClass"
	case CondEpsilon:
		return "Epsilon"
	default:
		return fmt.Sprintf("ConditionKind(%d)", k)
	}
}

// Condition is the guard on a Transition.
type Condition struct {
	Kind ConditionKind

	Literal rune

	Ranges  []token.Range
	Negated bool

	Category []string
}

// Equal reports structural equality between two conditions, used by
// duplicate-transition removal (§4.D phase 2/4).
func (c Condition) Equal(o Condition) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case CondAnyChar, CondEpsilon:
		return true
	case CondLiteral:
		return c.Literal == o.Literal
	case CondCharClass:
		if c.Negated != o.Negated || len(c.Ranges) != len(o.Ranges) {
			return false
		}
		for i := range c.Ranges {
			if c.Ranges[i] != o.Ranges[i] {
				return false
			}
		}
		return true
	case CondUnicodeClass:
		if c.Negated != o.Negated || len(c.Category) != len(o.Category) {
			return false
		}
		for i := range c.Category {
			if c.Category[i] != o.Category[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Matches reports whether r satisfies the condition. Used by tests that
// simulate an NFA directly (the oracle-comparison property tests), and
// mirrors the boolean expression the emitter compiles into matcher source.
func (c Condition) Matches(r rune) bool {
	var base bool
	switch c.Kind {
	case CondAnyChar:
		return true
	case CondLiteral:
		return r == c.Literal
	case CondCharClass:
		for _, rg := range c.Ranges {
			if rg.Contains(r) {
				base = true
				break
			}
		}
	case CondUnicodeClass:
		base = unicat.MatchAny(c.Category, r)
	case CondEpsilon:
		return false
	}
	if c.Negated {
		return !base
	}
	return base
}

// Transition is an edge out of a state: a target and a guard condition.
type Transition struct {
	Target    StateID
	Condition Condition
}

// State is one NFA state: an id, a debug label, and its outgoing
// transitions.
type State struct {
	ID          StateID
	Label       string
	Transitions []Transition
}

// NFA is an arena of states keyed by a dense, contiguous id range, plus the
// start and terminal sets and an extracted literal prefix (§3).
type NFA struct {
	States   []State
	Starts   map[StateID]struct{}
	Terminal map[StateID]struct{}
	Prefix   string
}

// IsStart reports whether id is a start state.
func (n *NFA) IsStart(id StateID) bool {
	_, ok := n.Starts[id]
	return ok
}

// IsTerminal reports whether id is a terminal state.
func (n *NFA) IsTerminal(id StateID) bool {
	_, ok := n.Terminal[id]
	return ok
}

// State returns the state record for id. Panics if id is out of range,
// matching the "dense, contiguous" invariant: a well-formed NFA never
// holds an out-of-range id.
func (n *NFA) State(id StateID) *State {
	return &n.States[id]
}
