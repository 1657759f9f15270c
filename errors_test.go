package fastregex

import (
	"errors"
	"testing"
)

func TestStageString(t *testing.T) {
	tests := []struct {
		s    Stage
		want string
	}{
		{StageLex, "lex"},
		{StageParse, "parse"},
		{StageBuild, "build"},
		{StageEmit, "emit"},
		{Stage(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestCompileErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &CompileError{Pattern: "a(", Stage: StageParse, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should see through CompileError.Unwrap to the inner error")
	}
}

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Pattern: "a(", Stage: StageParse, Err: errors.New("unmatched parenthesis")}
	want := `fastregex: parse error compiling "a(": unmatched parenthesis`
	if got := err.Error(); got != want {
		t.Errorf("CompileError.Error() = %q, want %q", got, want)
	}
}
