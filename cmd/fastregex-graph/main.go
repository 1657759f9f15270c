// Command fastregex-graph compiles a pattern and writes the resulting Go
// matcher source to stdout (or a file), with optional diagnostic output:
// a pretty-printed AST plus the raw and simplified NFA state counts
// (-debug) and a Graphviz dot rendering of the simplified NFA (-graph).
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v2"

	"github.com/djohn49/fastregex"
	"github.com/djohn49/fastregex/emit"
	"github.com/djohn49/fastregex/internal/dotgraph"
)

var (
	pattern    = kingpin.Arg("pattern", "Pattern to compile.").Required().String()
	out        = kingpin.Flag("out", "Write matcher source to this file instead of stdout.").Short('o').String()
	funcName   = kingpin.Flag("func", "Name of the emitted matcher function.").Default("Match").String()
	pkgName    = kingpin.Flag("package", "Package clause of the emitted file.").Default("matcher").String()
	activeSet  = kingpin.Flag("active-set", "Use the active-set/generation-counter emission strategy instead of flag-vector.").Bool()
	debug      = kingpin.Flag("debug", "Pretty-print the AST and report NFA state counts before emitting.").Bool()
	graphOut   = kingpin.Flag("graph", "Write a Graphviz dot rendering of the simplified NFA to this file.").String()
	configFile = kingpin.Flag("config", "YAML file overriding MaxRepeat and MaxRecursionDepth.").ExistingFile()
)

// fileConfig mirrors the subset of fastregex.Config an operator may want
// to override from a config file, without exposing Strategy/PackageName/
// FuncName there too (those stay command-line flags).
type fileConfig struct {
	MaxRepeat         int `yaml:"max_repeat"`
	MaxRecursionDepth int `yaml:"max_recursion_depth"`
}

func main() {
	kingpin.Parse()

	cfg := fastregex.DefaultConfig()
	cfg.FuncName = *funcName
	cfg.PackageName = *pkgName
	if *activeSet {
		cfg.Strategy = emit.ActiveSet
	}

	if *configFile != "" {
		raw, err := os.ReadFile(*configFile)
		kingpin.FatalIfError(err, "reading config file")
		var fc fileConfig
		kingpin.FatalIfError(yaml.Unmarshal(raw, &fc), "parsing config file")
		if fc.MaxRepeat != 0 {
			cfg.MaxRepeat = fc.MaxRepeat
		}
		if fc.MaxRecursionDepth != 0 {
			cfg.MaxRecursionDepth = fc.MaxRecursionDepth
		}
	}

	if *debug {
		ast, err := fastregex.ParseAST(*pattern)
		kingpin.FatalIfError(err, "parsing pattern")
		fmt.Fprintln(os.Stderr, "AST:")
		repr.Println(ast)

		raw, simplified, err := fastregex.BuildNFA(*pattern, cfg)
		kingpin.FatalIfError(err, "building NFA")
		fmt.Fprintf(os.Stderr, "NFA: %d raw states, %d after simplification\n", len(raw.States), len(simplified.States))
	}

	if *graphOut != "" {
		_, simplified, err := fastregex.BuildNFA(*pattern, cfg)
		kingpin.FatalIfError(err, "building NFA")
		dot, err := dotgraph.Render(simplified, *pkgName)
		kingpin.FatalIfError(err, "rendering graph")
		kingpin.FatalIfError(os.WriteFile(*graphOut, []byte(dot), 0644), "writing graph")
	}

	src, err := fastregex.Compile(*pattern, cfg)
	kingpin.FatalIfError(err, "compiling pattern")

	if *out == "" {
		fmt.Print(src)
		return
	}
	kingpin.FatalIfError(os.WriteFile(*out, []byte(src), 0644), "writing matcher source")
}
