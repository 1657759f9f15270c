package parser

import "fmt"

// ErrorKind identifies the taxonomy of parse-time failures (§7).
type ErrorKind uint8

const (
	// ErrUnmatchedParen is raised for an OpenGroup with no matching
	// CloseGroup, or a CloseGroup with no matching OpenGroup.
	ErrUnmatchedParen ErrorKind = iota
	// ErrDanglingRepetition is raised when a Rep token has no preceding
	// atom to bind to.
	ErrDanglingRepetition
	// ErrRepetitionOfRepetition is raised when two repetition tokens are
	// syntactically adjacent.
	ErrRepetitionOfRepetition
	// ErrEmptyAlternative is raised for a leading, trailing, or
	// doubled '|'.
	ErrEmptyAlternative
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnmatchedParen:
		return "unmatched parenthesis"
	case ErrDanglingRepetition:
		return "dangling repetition operator"
	case ErrRepetitionOfRepetition:
		return "repetition of repetition"
	case ErrEmptyAlternative:
		return "empty alternative"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error reports a parse-time failure with its kind and the byte offset of
// the offending token.
type Error struct {
	Kind ErrorKind
	Pos  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Kind)
}
