package tappio

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is wrapped by a ParseError when the token stream ends early.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrUnbalancedIndent reports a writer defect: indentation did not return to zero.
var ErrUnbalancedIndent = errors.New("unbalanced indentation")

// LexError is a tokenization failure. The lexer stops at the first one.
type LexError struct {
	Pos   Position
	State string // lexer state the failure happened in
	Msg   string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s in %s: %s", e.Pos, e.State, e.Msg)
}

// ParseError is a grammar or semantic failure. The parser stops at the first one.
type ParseError struct {
	Pos      Position
	Expected string
	Got      string
	Msg      string // set instead of Expected/Got for semantic errors
	Err      error
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("parse error at %s: expected %s, got %s", e.Pos, e.Expected, e.Got)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
