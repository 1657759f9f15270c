package simplify

import (
	"strings"
	"testing"

	"github.com/djohn49/fastregex/ast"
	"github.com/djohn49/fastregex/nfa"
	"github.com/djohn49/fastregex/token"
)

func lit(r rune) *ast.Node { return &ast.Node{Kind: ast.Literal, Literal: r} }

func compileToNFA(t *testing.T, root *ast.Node) *nfa.NFA {
	t.Helper()
	n, err := nfa.Build(root, nfa.DefaultBuildConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return n
}

// simulate walks a post-simplification NFA directly, without any
// ε-transitions to chase (the post-simplification invariant this test
// suite checks for), to double as both a sanity check and a match
// oracle.
func simulate(n *nfa.NFA, input string) bool {
	if !strings.HasPrefix(input, n.Prefix) {
		return false
	}
	input = input[len(n.Prefix):]

	cur := make(map[nfa.StateID]struct{}, len(n.Starts))
	for id := range n.Starts {
		cur[id] = struct{}{}
	}
	for _, r := range input {
		next := make(map[nfa.StateID]struct{})
		for id := range cur {
			for _, tr := range n.State(id).Transitions {
				if tr.Condition.Matches(r) {
					next[tr.Target] = struct{}{}
				}
			}
		}
		cur = next
		if len(cur) == 0 {
			return false
		}
	}
	for id := range cur {
		if n.IsTerminal(id) {
			return true
		}
	}
	return false
}

func TestSimplifyNoEpsilonTransitions(t *testing.T) {
	patterns := []*ast.Node{
		ast.NewRep(lit('a'), 0, token.Unbounded),
		ast.NewRep(lit('a'), 2, 4),
		ast.NewAlt([]*ast.Node{lit('a'), lit('b'), lit('c')}),
		ast.NewRep(ast.NewAlt([]*ast.Node{lit('a'), lit('b')}), 1, 3),
	}
	for _, root := range patterns {
		raw := compileToNFA(t, root)
		simplified := Simplify(raw)
		for _, s := range simplified.States {
			for _, tr := range s.Transitions {
				if tr.Condition.Kind == nfa.CondEpsilon {
					t.Errorf("simplified NFA still has an ε-transition out of state %d", s.ID)
				}
			}
		}
	}
}

func TestSimplifyNoDuplicateTransitions(t *testing.T) {
	root := ast.NewAlt([]*ast.Node{lit('a'), lit('a'), lit('b')})
	raw := compileToNFA(t, root)
	simplified := Simplify(raw)
	for _, s := range simplified.States {
		for i, a := range s.Transitions {
			for j, b := range s.Transitions {
				if i != j && a.Target == b.Target && a.Condition.Equal(b.Condition) {
					t.Errorf("state %d has duplicate transitions to %d", s.ID, a.Target)
				}
			}
		}
	}
}

func TestSimplifyEveryStateReachable(t *testing.T) {
	root := ast.NewRep(ast.NewAlt([]*ast.Node{lit('a'), lit('b')}), 1, 3)
	raw := compileToNFA(t, root)
	simplified := Simplify(raw)

	forward := bfsForward(simplified.States, simplified.Starts)
	backward := bfsBackward(simplified.States, simplified.Terminal)
	for i := range simplified.States {
		id := nfa.StateID(i)
		if _, ok := forward[id]; !ok {
			t.Errorf("state %d is not forward-reachable from a start state", id)
		}
		if _, ok := backward[id]; !ok {
			t.Errorf("state %d cannot reach a terminal state", id)
		}
	}
}

func TestSimplifyPreservesLanguage(t *testing.T) {
	tests := []struct {
		root    *ast.Node
		accept  []string
		reject  []string
	}{
		{
			root:   ast.NewConcat([]*ast.Node{lit('a'), lit('b'), lit('c')}),
			accept: []string{"abc"},
			reject: []string{"ab", "abcd", ""},
		},
		{
			root:   ast.NewRep(lit('a'), 0, token.Unbounded),
			accept: []string{"", "a", "aaaa"},
			reject: []string{"b", "aab"},
		},
		{
			root: ast.NewRep(ast.NewAlt([]*ast.Node{
				ast.NewConcat([]*ast.Node{lit('a'), lit('b')}),
				ast.NewConcat([]*ast.Node{lit('c'), lit('d')}),
			}), 2, 3),
			accept: []string{"abab", "abcd", "cdcdcd"},
			reject: []string{"ab", "abababab"},
		},
	}

	for _, tt := range tests {
		raw := compileToNFA(t, tt.root)
		simplified := Simplify(raw)
		for _, s := range tt.accept {
			if !simulate(simplified, s) {
				t.Errorf("simplified NFA rejects %q, want accept", s)
			}
		}
		for _, s := range tt.reject {
			if simulate(simplified, s) {
				t.Errorf("simplified NFA accepts %q, want reject", s)
			}
		}
	}
}

func TestExtractLiteralPrefix(t *testing.T) {
	// "abc" followed by a choice: literal prefix should be "abc".
	root := ast.NewConcat([]*ast.Node{lit('a'), lit('b'), lit('c'), ast.NewAlt([]*ast.Node{lit('x'), lit('y')})})
	raw := compileToNFA(t, root)
	simplified := Simplify(raw)
	if simplified.Prefix != "abc" {
		t.Errorf("Prefix = %q, want %q", simplified.Prefix, "abc")
	}
	if !simulate(simplified, "abcx") || !simulate(simplified, "abcy") {
		t.Error("prefix extraction must not change acceptance")
	}
	if simulate(simplified, "abc") || simulate(simplified, "abcz") {
		t.Error("prefix extraction must not change rejection")
	}
}

func TestExtractLiteralPrefixNoneWhenAlternationAtStart(t *testing.T) {
	root := ast.NewAlt([]*ast.Node{lit('a'), lit('b')})
	raw := compileToNFA(t, root)
	simplified := Simplify(raw)
	if simplified.Prefix != "" {
		t.Errorf("Prefix = %q, want empty (no common prefix)", simplified.Prefix)
	}
}

func TestEpsilonReach(t *testing.T) {
	states := []nfa.State{
		{ID: 0, Transitions: []nfa.Transition{{Target: 1, Condition: nfa.Condition{Kind: nfa.CondEpsilon}}}},
		{ID: 1, Transitions: []nfa.Transition{{Target: 2, Condition: nfa.Condition{Kind: nfa.CondEpsilon}}}},
		{ID: 2, Transitions: []nfa.Transition{{Target: 3, Condition: nfa.Condition{Kind: nfa.CondLiteral, Literal: 'a'}}}},
		{ID: 3},
	}
	reach := epsilonReach(states, 0)
	want := map[nfa.StateID]bool{0: true, 1: true, 2: true}
	if len(reach) != len(want) {
		t.Fatalf("epsilonReach(0) = %v, want states {0,1,2}", reach)
	}
	for _, id := range reach {
		if !want[id] {
			t.Errorf("unexpected state %d in epsilonReach(0)", id)
		}
	}
}
