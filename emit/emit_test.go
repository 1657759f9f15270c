package emit

import (
	"strings"
	"testing"

	"github.com/djohn49/fastregex/nfa"
)

// twoStateLiteralNFA builds a minimal simplified NFA accepting only "a":
// state 0 --'a'--> state 1 (terminal).
func twoStateLiteralNFA() *nfa.NFA {
	return &nfa.NFA{
		States: []nfa.State{
			{ID: 0, Transitions: []nfa.Transition{
				{Target: 1, Condition: nfa.Condition{Kind: nfa.CondLiteral, Literal: 'a'}},
			}},
			{ID: 1},
		},
		Starts:   map[nfa.StateID]struct{}{0: {}},
		Terminal: map[nfa.StateID]struct{}{1: {}},
	}
}

func TestEmitFlagsStrategy(t *testing.T) {
	src, err := Emit(twoStateLiteralNFA(), Options{Package: "matcher", FuncName: "Match", Pattern: "a", Strategy: Flags})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	for _, want := range []string{"package matcher", "func Match(input string) bool", "var cur [2]bool", "cur[0] = true"} {
		if !strings.Contains(src, want) {
			t.Errorf("Flags output missing %q\n--- got ---\n%s", want, src)
		}
	}
	if strings.Contains(src, "unicat") {
		t.Error("should not import unicat when no UnicodeClass condition is present")
	}
}

func TestEmitActiveSetStrategy(t *testing.T) {
	src, err := Emit(twoStateLiteralNFA(), Options{Package: "matcher", FuncName: "Match", Pattern: "a", Strategy: ActiveSet})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	for _, want := range []string{"package matcher", "func Match(input string) bool", "gen := 0", "var stamps [2]int"} {
		if !strings.Contains(src, want) {
			t.Errorf("ActiveSet output missing %q\n--- got ---\n%s", want, src)
		}
	}
}

func TestEmitEmptyLanguage(t *testing.T) {
	empty := &nfa.NFA{}
	src, err := Emit(empty, Options{Package: "matcher", FuncName: "Match", Pattern: "[^\\x00-\\x{10FFFF}]", Strategy: Flags})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(src, "return false") {
		t.Errorf("empty-language matcher should unconditionally return false:\n%s", src)
	}
}

func TestEmitNeedsUnicatImport(t *testing.T) {
	n := &nfa.NFA{
		States: []nfa.State{
			{ID: 0, Transitions: []nfa.Transition{
				{Target: 1, Condition: nfa.Condition{Kind: nfa.CondUnicodeClass, Category: []string{"Nd"}}},
			}},
			{ID: 1},
		},
		Starts:   map[nfa.StateID]struct{}{0: {}},
		Terminal: map[nfa.StateID]struct{}{1: {}},
	}
	src, err := Emit(n, Options{Package: "matcher", FuncName: "Match", Pattern: `\d`, Strategy: Flags})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(src, `"github.com/djohn49/fastregex/unicat"`) {
		t.Error("expected unicat import when a UnicodeClass condition is present")
	}
}

func TestEmitLiteralPrefix(t *testing.T) {
	n := twoStateLiteralNFA()
	n.Prefix = "hello"
	src, err := Emit(n, Options{Package: "matcher", FuncName: "Match", Pattern: "helloa", Strategy: Flags})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(src, `strings.HasPrefix(input, "hello")`) {
		t.Errorf("expected a HasPrefix check for the extracted literal prefix:\n%s", src)
	}
}

func TestStrategyString(t *testing.T) {
	if Flags.String() != "Flags" {
		t.Errorf("Flags.String() = %q, want \"Flags\"", Flags.String())
	}
	if ActiveSet.String() != "ActiveSet" {
		t.Errorf("ActiveSet.String() = %q, want \"ActiveSet\"", ActiveSet.String())
	}
}
