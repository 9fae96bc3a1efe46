package tappio

import (
	"fmt"
	"io"
)

// TokenKind is the lexical class of a token.
type TokenKind uint8

const (
	BraceOpen TokenKind = iota
	BraceClose
	Integer
	Symbol
	String
)

// String returns the token kind name.
func (k TokenKind) String() string {
	switch k {
	case BraceOpen:
		return "brace_open"
	case BraceClose:
		return "brace_close"
	case Integer:
		return "integer"
	case Symbol:
		return "symbol"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Position is a 1-based line and column in the input.
type Position struct {
	Line   int
	Column int
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one lexeme. Braces carry an empty Value; strings carry the decoded text.
type Token struct {
	Kind  TokenKind
	Value string
	Pos   Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Value == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Value)
}

// TokenSource yields tokens one at a time and io.EOF after the last one.
type TokenSource interface {
	Next() (Token, error)
}

// SliceSource is a TokenSource over an already tokenized input.
type SliceSource struct {
	tokens []Token
	pos    int
}

// NewSliceSource returns a TokenSource reading tokens in order.
func NewSliceSource(tokens []Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// Next returns the next token, or io.EOF.
func (s *SliceSource) Next() (Token, error) {
	if s.pos >= len(s.tokens) {
		return Token{}, io.EOF
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}
