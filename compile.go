package fastregex

import (
	"github.com/djohn49/fastregex/ast"
	"github.com/djohn49/fastregex/emit"
	"github.com/djohn49/fastregex/lexer"
	"github.com/djohn49/fastregex/nfa"
	"github.com/djohn49/fastregex/parser"
	"github.com/djohn49/fastregex/simplify"
)

// Compile runs the full pipeline (§2: lex -> parse -> build -> simplify ->
// emit) over pattern and returns self-contained Go matcher source
// implementing the §6 matcher interface: func(input string) bool, true
// iff the entire input is in pattern's language.
//
// Compile is the pipeline's single entry point (§6): compile(pattern,
// strategy) -> emitted_source | CompileError.
func Compile(pattern string, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	toks, err := lexer.Lex(pattern)
	if err != nil {
		return "", &CompileError{Pattern: pattern, Stage: StageLex, Err: err}
	}

	root, err := parser.Parse(toks)
	if err != nil {
		return "", &CompileError{Pattern: pattern, Stage: StageParse, Err: err}
	}

	n, err := nfa.Build(root, nfa.BuildConfig{
		MaxRepeat:         cfg.MaxRepeat,
		MaxRecursionDepth: cfg.MaxRecursionDepth,
	})
	if err != nil {
		return "", &CompileError{Pattern: pattern, Stage: StageBuild, Err: err}
	}

	simplified := simplify.Simplify(n)

	src, err := emit.Emit(simplified, emit.Options{
		Package:  cfg.PackageName,
		FuncName: cfg.FuncName,
		Pattern:  pattern,
		Strategy: cfg.Strategy,
	})
	if err != nil {
		return "", &CompileError{Pattern: pattern, Stage: StageEmit, Err: err}
	}
	return src, nil
}

// ParseAST is a lower-level entry point exposing just the lex+parse
// stages, used by the diagnostic CLI (§6) and by tests that need the AST
// without running the rest of the pipeline.
func ParseAST(pattern string) (*ast.Node, error) {
	toks, err := lexer.Lex(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Stage: StageLex, Err: err}
	}
	return parser.Parse(toks)
}

// BuildNFA runs lex+parse+build+simplify and returns both the
// pre-simplification and post-simplification NFA, for use by the
// diagnostic rendering collaborator (§6) and tests.
func BuildNFA(pattern string, cfg Config) (raw, simplified *nfa.NFA, err error) {
	toks, err := lexer.Lex(pattern)
	if err != nil {
		return nil, nil, &CompileError{Pattern: pattern, Stage: StageLex, Err: err}
	}
	root, err := parser.Parse(toks)
	if err != nil {
		return nil, nil, &CompileError{Pattern: pattern, Stage: StageParse, Err: err}
	}
	raw, err = nfa.Build(root, nfa.BuildConfig{MaxRepeat: cfg.MaxRepeat, MaxRecursionDepth: cfg.MaxRecursionDepth})
	if err != nil {
		return nil, nil, &CompileError{Pattern: pattern, Stage: StageBuild, Err: err}
	}
	return raw, simplify.Simplify(raw), nil
}
