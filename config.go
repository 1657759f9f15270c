package fastregex

import (
	"fmt"

	"github.com/djohn49/fastregex/emit"
)

// Config controls pipeline behavior: which emission strategy to render and
// the compile-time limits that bound pathological patterns (SPEC_FULL.md
// §5 "Compile-time limits").
type Config struct {
	// Strategy selects the emitted matcher's active-set representation.
	// Default: emit.Flags.
	Strategy emit.Strategy

	// PackageName is the package clause of the emitted file.
	// Default: "matcher".
	PackageName string

	// FuncName is the emitted matcher function's exported name.
	// Default: "Match".
	FuncName string

	// MaxRepeat bounds the min/max value accepted by any single {m,n}
	// repetition, preventing unbounded state-count blowup from patterns
	// like a{1000000}. Default: 1000.
	MaxRepeat int

	// MaxRecursionDepth bounds AST nesting depth during NFA construction,
	// preventing stack exhaustion on deeply nested groups.
	// Default: 100.
	MaxRecursionDepth int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Strategy:          emit.Flags,
		PackageName:       "matcher",
		FuncName:          "Match",
		MaxRepeat:         1000,
		MaxRecursionDepth: 100,
	}
}

// Validate checks that every field is within its valid range.
func (c Config) Validate() error {
	if c.PackageName == "" {
		return &ConfigError{Field: "PackageName", Message: "must not be empty"}
	}
	if c.FuncName == "" {
		return &ConfigError{Field: "FuncName", Message: "must not be empty"}
	}
	if c.MaxRepeat < 1 || c.MaxRepeat > 1_000_000 {
		return &ConfigError{Field: "MaxRepeat", Message: "must be between 1 and 1,000,000"}
	}
	if c.MaxRecursionDepth < 1 || c.MaxRecursionDepth > 10_000 {
		return &ConfigError{Field: "MaxRecursionDepth", Message: "must be between 1 and 10,000"}
	}
	return nil
}

// ConfigError reports an out-of-range or otherwise invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fastregex: invalid config field %s: %s", e.Field, e.Message)
}
