// Package fastregex compiles a restricted regular-expression pattern into
// self-contained Go matcher source code.
//
// Unlike regexp packages that interpret a pattern at match time, fastregex
// runs its whole pipeline (lex, parse, build, simplify, emit) once, at
// compile time, and hands back a Go source string declaring a single
// function:
//
//	func Match(input string) bool
//
// The emitted function has no dependency on fastregex itself (aside from
// an optional import of the unicat package when the pattern uses a
// Unicode general-category class) and performs no heap allocation per
// call; it simulates the pattern's NFA directly against input, rune by
// rune.
//
// Basic usage:
//
//	src, err := fastregex.Compile(`[a-z]+@[a-z]+\.[a-z]{2,3}`, fastregex.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("matcher.go", []byte(src), 0644)
//
// Two emission strategies are available via Config.Strategy: emit.Flags
// simulates the NFA with a fixed-size boolean vector, one entry per
// state; emit.ActiveSet tracks only the currently-live states in a
// fixed-capacity array, using a generation counter to dedupe membership
// in O(1) instead of clearing the array every step. Both strategies
// accept exactly the same language; ActiveSet tends to win on NFAs with
// many states but few simultaneously-active branches.
//
// fastregex only ever matches a pattern against the whole of its input
// (no substring search, no capture groups, no anchors, no
// back-references, no lookaround); see SPEC_FULL.md for the full
// rationale.
package fastregex
