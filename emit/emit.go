// Package emit implements §4.E: rendering a simplified NFA into
// self-contained Go matcher source. Both emission strategies (Flags,
// ActiveSet) are implemented so the cross-strategy equivalence property
// (§8) can be checked against the same NFA.
//
// The emitter targets Go itself as the "target language abstract
// template" §9 leaves open: the emitted function signature is
// func(input string) bool, matching §6's matcher interface exactly, and
// the generated file imports nothing beyond the standard library plus
// this module's unicat collaborator (the one runtime dependency the
// matcher interface names in §6).
package emit

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/alecthomas/template"

	"github.com/djohn49/fastregex/nfa"
)

// Options controls the rendered matcher's shape.
type Options struct {
	// Package is the package clause of the emitted file.
	Package string
	// FuncName is the exported matcher function's name.
	FuncName string
	// Pattern is the source pattern, embedded in a doc comment only.
	Pattern string
	// Strategy selects which of the two emission strategies to render.
	Strategy Strategy
}

// condTarget is one (condition, target) pair compiled to a Go expression
// plus the destination state id.
type condTarget struct {
	Expr   string
	Target int
}

// stateBlock holds one state's outgoing transitions, already compiled to
// Go boolean expressions.
type stateBlock struct {
	ID    int
	Conds []condTarget
}

type templateData struct {
	Package       string
	FuncName      string
	Pattern       string
	HasPrefix     bool
	PrefixLiteral string
	NumStates     int
	StartIDs      []int
	TerminalIDs   []int
	StateBlocks   []stateBlock
	Empty         bool
	NeedsUnicat   bool
}

// Emit renders simplified matcher source for n according to opts.
//
// n must already satisfy the post-simplification invariants of §3 (no
// ε-transitions, deduplicated outgoing transitions, dead states pruned);
// Emit does not re-simplify. If n accepts no strings (no start state or no
// terminal state), Emit produces a matcher that always returns false,
// per §7: "the emitter cannot fail ... if the language is empty, it
// emits an always-reject matcher rather than erroring."
func Emit(n *nfa.NFA, opts Options) (string, error) {
	data := buildTemplateData(n, opts)

	tmplSrc, err := templateSource(opts.Strategy)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(opts.Strategy.String()).Parse(tmplSrc)
	if err != nil {
		return "", fmt.Errorf("emit: parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("emit: execute template: %w", err)
	}
	return buf.String(), nil
}

func buildTemplateData(n *nfa.NFA, opts Options) templateData {
	data := templateData{
		Package:  opts.Package,
		FuncName: opts.FuncName,
		Pattern:  opts.Pattern,
		NumStates: len(n.States),
	}

	if n.Prefix != "" {
		data.HasPrefix = true
		data.PrefixLiteral = strconv.Quote(n.Prefix)
	}

	if len(n.Starts) == 0 || len(n.Terminal) == 0 || len(n.States) == 0 {
		data.Empty = true
		return data
	}

	for id := range n.Starts {
		data.StartIDs = append(data.StartIDs, int(id))
	}
	for id := range n.Terminal {
		data.TerminalIDs = append(data.TerminalIDs, int(id))
	}
	sortInts(data.StartIDs)
	sortInts(data.TerminalIDs)

	data.StateBlocks = make([]stateBlock, len(n.States))
	for i, s := range n.States {
		conds := make([]condTarget, len(s.Transitions))
		for j, t := range s.Transitions {
			conds[j] = condTarget{Expr: condExpr(t.Condition), Target: int(t.Target)}
			if t.Condition.Kind == nfa.CondUnicodeClass {
				data.NeedsUnicat = true
			}
		}
		data.StateBlocks[i] = stateBlock{ID: i, Conds: conds}
	}
	return data
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
