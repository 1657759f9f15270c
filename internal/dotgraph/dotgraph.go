// Package dotgraph renders a compiled NFA as a Graphviz "dot" description,
// for the -graph flag of cmd/fastregex-graph. It is a diagnostic
// collaborator only; nothing in the compile pipeline depends on it.
package dotgraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/djohn49/fastregex/nfa"
)

// Render writes n as a directed graph in Graphviz dot syntax. Start states
// are drawn with a bold border, terminal states as double circles.
//
// Every chain of three or more consecutive single-literal transitions is
// collected as a "literal run" and its edges are highlighted in blue. An
// Aho-Corasick automaton built over those runs is then run against n's
// extracted prefix (n.Prefix): if some run occurs inside the prefix, a
// comment saying so is written into the graph. An NFA with an empty prefix
// never gets that comment.
func Render(n *nfa.NFA, name string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", quoteID(name))
	b.WriteString("\trankdir=LR;\n")

	runs, runOf := literalRuns(n)
	hint, err := runHintAutomaton(runs)
	if err != nil {
		return "", fmt.Errorf("dotgraph: %w", err)
	}
	if n.Prefix != "" && hint.IsMatch([]byte(n.Prefix)) {
		fmt.Fprintf(&b, "\t// note: prefix %q recurs as an interior literal run\n", n.Prefix)
	}

	ids := make([]int, len(n.States))
	for i := range n.States {
		ids[i] = i
	}
	sort.Ints(ids)

	for _, id := range ids {
		sid := nfa.StateID(id)
		shape := "circle"
		if n.IsTerminal(sid) {
			shape = "doublecircle"
		}
		style := ""
		if n.IsStart(sid) {
			style = ", penwidth=2"
		}
		fmt.Fprintf(&b, "\t%d [shape=%s%s];\n", id, shape, style)
	}

	for _, id := range ids {
		s := n.State(nfa.StateID(id))
		for _, t := range s.Transitions {
			label := transitionLabel(t.Condition)
			if runOf[nfa.StateID(id)] {
				fmt.Fprintf(&b, "\t%d -> %d [label=%q, color=blue];\n", id, t.Target, label)
				continue
			}
			fmt.Fprintf(&b, "\t%d -> %d [label=%q];\n", id, t.Target, label)
		}
	}

	b.WriteString("}\n")
	return b.String(), nil
}

// transitionLabel renders a single condition as a short human-readable
// edge label; it does not need to be re-lexable, only legible.
func transitionLabel(c nfa.Condition) string {
	switch c.Kind {
	case nfa.CondEpsilon:
		return "ε"
	case nfa.CondAnyChar:
		return "."
	case nfa.CondLiteral:
		return string(c.Literal)
	case nfa.CondCharClass:
		return "[class]"
	case nfa.CondUnicodeClass:
		return "\\p{" + strings.Join(c.Category, ",") + "}"
	default:
		return "?"
	}
}

// literalRuns walks every state with exactly one outgoing literal
// transition and collects the chained literal text, for runs of length 3
// or more. It also returns the set of states belonging to some run, for
// Render's edge-highlighting pass.
func literalRuns(n *nfa.NFA) ([][]byte, map[nfa.StateID]bool) {
	var runs [][]byte
	runOf := make(map[nfa.StateID]bool)
	visited := make(map[nfa.StateID]bool)
	for i := range n.States {
		start := nfa.StateID(i)
		if visited[start] {
			continue
		}
		var lit []rune
		var members []nfa.StateID
		cur := start
		for {
			s := n.State(cur)
			if len(s.Transitions) != 1 || s.Transitions[0].Condition.Kind != nfa.CondLiteral {
				break
			}
			visited[cur] = true
			members = append(members, cur)
			lit = append(lit, s.Transitions[0].Condition.Literal)
			cur = s.Transitions[0].Target
		}
		if len(lit) >= 3 {
			runs = append(runs, []byte(string(lit)))
			for _, m := range members {
				runOf[m] = true
			}
		}
	}
	return runs, runOf
}

// runHintAutomaton builds an Aho-Corasick automaton over runs so Render
// can test n.Prefix against every run in one pass, rather than searching
// for each run separately.
func runHintAutomaton(runs [][]byte) (*ahocorasick.Automaton, error) {
	builder := ahocorasick.NewBuilder()
	for _, r := range runs {
		builder.AddPattern(r)
	}
	return builder.Build()
}

func quoteID(s string) string {
	if s == "" {
		return "fastregex"
	}
	return s
}
