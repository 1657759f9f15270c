package nfa

import (
	"testing"

	"github.com/djohn49/fastregex/token"
)

func TestConditionKindString(t *testing.T) {
	tests := []struct {
		k    ConditionKind
		want string
	}{
		{CondAnyChar, "AnyChar"},
		{CondLiteral, "Literal"},
		{CondCharClass, "CharClass"},
		{CondUnicodeClass, "UnicodeClass"},
		{CondEpsilon, "Epsilon"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestConditionMatchesAnyChar(t *testing.T) {
	c := Condition{Kind: CondAnyChar}
	if !c.Matches('x') || !c.Matches('é') {
		t.Error("AnyChar should match any rune")
	}
}

func TestConditionMatchesLiteral(t *testing.T) {
	c := Condition{Kind: CondLiteral, Literal: 'a'}
	if !c.Matches('a') || c.Matches('b') {
		t.Error("Literal('a') should match only 'a'")
	}
}

func TestConditionMatchesCharClass(t *testing.T) {
	c := Condition{Kind: CondCharClass, Ranges: []token.Range{{Lo: 'a', Hi: 'z'}}}
	if !c.Matches('m') || c.Matches('M') {
		t.Error("CharClass [a-z] should match 'm' but not 'M'")
	}

	neg := Condition{Kind: CondCharClass, Negated: true, Ranges: []token.Range{{Lo: 'a', Hi: 'z'}}}
	if neg.Matches('m') || !neg.Matches('M') {
		t.Error("negated CharClass [^a-z] should match 'M' but not 'm'")
	}
}

func TestConditionMatchesUnicodeClass(t *testing.T) {
	c := Condition{Kind: CondUnicodeClass, Category: []string{"Nd"}}
	if !c.Matches('5') || c.Matches('a') {
		t.Error("UnicodeClass(Nd) should match '5' but not 'a'")
	}
}

func TestConditionMatchesEpsilon(t *testing.T) {
	c := Condition{Kind: CondEpsilon}
	if c.Matches('a') {
		t.Error("Epsilon should never match an input rune")
	}
}

func TestConditionEqual(t *testing.T) {
	a := Condition{Kind: CondLiteral, Literal: 'x'}
	b := Condition{Kind: CondLiteral, Literal: 'x'}
	c := Condition{Kind: CondLiteral, Literal: 'y'}
	if !a.Equal(b) {
		t.Error("identical literal conditions should be equal")
	}
	if a.Equal(c) {
		t.Error("different literal conditions should not be equal")
	}

	cc1 := Condition{Kind: CondCharClass, Ranges: []token.Range{{Lo: 'a', Hi: 'z'}}}
	cc2 := Condition{Kind: CondCharClass, Ranges: []token.Range{{Lo: 'a', Hi: 'z'}}}
	cc3 := Condition{Kind: CondCharClass, Negated: true, Ranges: []token.Range{{Lo: 'a', Hi: 'z'}}}
	if !cc1.Equal(cc2) {
		t.Error("identical char classes should be equal")
	}
	if cc1.Equal(cc3) {
		t.Error("negation difference should make char classes unequal")
	}
}

func TestNFAIsStartIsTerminal(t *testing.T) {
	n := &NFA{
		States:   []State{{ID: 0}, {ID: 1}},
		Starts:   map[StateID]struct{}{0: {}},
		Terminal: map[StateID]struct{}{1: {}},
	}
	if !n.IsStart(0) || n.IsStart(1) {
		t.Error("IsStart wrong for state 0/1")
	}
	if n.IsTerminal(0) || !n.IsTerminal(1) {
		t.Error("IsTerminal wrong for state 0/1")
	}
	if n.State(0).ID != 0 || n.State(1).ID != 1 {
		t.Error("State() returned wrong record")
	}
}
