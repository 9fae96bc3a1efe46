package tappio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const symbolPunct = "!$%&/+?-_*"

// byteOrderMark is skipped at the very start of the input only.
const byteOrderMark = '\ufeff'

type lexState uint8

const (
	stateInitial lexState = iota
	stateInteger
	stateSymbol
	stateString
	stateStringEscape
)

func (s lexState) String() string {
	switch s {
	case stateInitial:
		return "initial"
	case stateInteger:
		return "integer"
	case stateSymbol:
		return "symbol"
	case stateString:
		return "string"
	case stateStringEscape:
		return "string_escape"
	default:
		return "unknown"
	}
}

// Lexer turns Tappio text into tokens on demand. It reads its input once
// and cannot be rewound; tokenizing again needs a new Lexer over the source.
type Lexer struct {
	r       *bufio.Reader
	state   lexState
	value   strings.Builder
	start   Position // first character of the token being built
	pos     Position // character being processed
	next    Position // character to be read next
	pending []Token
	done    bool
	err     error
}

// NewLexer creates a lexer reading UTF-8 text from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		r:    bufio.NewReader(r),
		next: Position{Line: 1, Column: 1},
	}
}

// Next returns the next token. It returns io.EOF after the last token and
// a *LexError (or a read error) if the input is malformed.
func (l *Lexer) Next() (Token, error) {
	for len(l.pending) == 0 {
		if l.err != nil {
			return Token{}, l.err
		}
		if l.done {
			return Token{}, io.EOF
		}
		l.step()
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok, nil
}

// Tokenize reads all tokens from r.
func Tokenize(r io.Reader) ([]Token, error) {
	l := NewLexer(r)
	var tokens []Token
	for {
		tok, err := l.Next()
		if errors.Is(err, io.EOF) {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// TokenizeString reads all tokens from s.
func TokenizeString(s string) ([]Token, error) {
	return Tokenize(strings.NewReader(s))
}

func (l *Lexer) step() {
	ch, size, err := l.r.ReadRune()
	if errors.Is(err, io.EOF) {
		l.finish()
		return
	}
	if err != nil {
		l.err = fmt.Errorf("reading input: %w", err)
		return
	}
	if ch == byteOrderMark && l.next == (Position{Line: 1, Column: 1}) {
		return
	}

	l.pos = l.next
	if ch == '\n' {
		l.next.Line++
		l.next.Column = 1
	} else {
		l.next.Column++
	}

	if ch == utf8.RuneError && size == 1 {
		l.err = l.errorf("invalid UTF-8 byte (wrong charset?)")
		return
	}
	l.err = l.feed(ch)
}

// finish feeds a synthetic space to flush a pending integer or symbol.
// Any state other than initial afterwards means the input was cut short.
func (l *Lexer) finish() {
	l.pos = l.next
	l.done = true
	if err := l.feed(' '); err != nil {
		l.err = err
		return
	}
	switch l.state {
	case stateInitial:
	case stateString, stateStringEscape:
		l.err = l.errorf("unterminated string starting at %s", l.start)
	default:
		l.err = l.errorf("unexpected end of input")
	}
}

func (l *Lexer) feed(ch rune) error {
	switch l.state {
	case stateInteger:
		return l.integer(ch)
	case stateSymbol:
		return l.symbol(ch)
	case stateString:
		l.quoted(ch)
		return nil
	case stateStringEscape:
		l.escaped(ch)
		return nil
	default:
		return l.initial(ch)
	}
}

func (l *Lexer) initial(ch rune) error {
	l.state = stateInitial

	switch {
	case isSpace(ch):
	case ch == '(':
		l.start = l.pos
		l.emit(BraceOpen)
	case ch == ')':
		l.start = l.pos
		l.emit(BraceClose)
	case ch == '-' || isDigit(ch):
		l.begin(stateInteger)
		l.value.WriteRune(ch)
	case isSymbolChar(ch):
		l.begin(stateSymbol)
		l.value.WriteRune(ch)
	case ch == '"':
		l.begin(stateString)
	default:
		return l.errorf("unexpected %q", ch)
	}
	return nil
}

func (l *Lexer) integer(ch rune) error {
	if isDigit(ch) {
		l.value.WriteRune(ch)
		return nil
	}
	if l.value.String() == "-" {
		return &LexError{Pos: l.start, State: l.state.String(), Msg: "expected digit after '-'"}
	}
	l.emit(Integer)
	return l.initial(ch)
}

func (l *Lexer) symbol(ch rune) error {
	if isSymbolChar(ch) {
		l.value.WriteRune(ch)
		return nil
	}
	l.emit(Symbol)
	return l.initial(ch)
}

func (l *Lexer) quoted(ch rune) {
	switch ch {
	case '"':
		l.emit(String)
		l.state = stateInitial
	case '\\':
		l.state = stateStringEscape
	default:
		l.value.WriteRune(ch)
	}
}

// escaped keeps the escaped character and drops the backslash;
// \n is the one escape that decodes to something else.
func (l *Lexer) escaped(ch rune) {
	if ch == 'n' {
		ch = '\n'
	}
	l.value.WriteRune(ch)
	l.state = stateString
}

func (l *Lexer) begin(state lexState) {
	l.state = state
	l.start = l.pos
	l.value.Reset()
}

func (l *Lexer) emit(kind TokenKind) {
	l.pending = append(l.pending, Token{Kind: kind, Value: l.value.String(), Pos: l.start})
	l.value.Reset()
}

func (l *Lexer) errorf(format string, args ...any) *LexError {
	return &LexError{Pos: l.pos, State: l.state.String(), Msg: fmt.Sprintf(format, args...)}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isSymbolChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || strings.ContainsRune(symbolPunct, ch)
}
