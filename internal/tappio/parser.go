package tappio

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cleared-dev/tappio/internal/model"
)

// Parser builds a Document from a token stream by recursive descent with
// one token of lookahead.
type Parser struct {
	src    TokenSource
	next   Token
	peeked bool
	atEOF  bool
	last   Position
}

// NewParser creates a parser reading from src.
func NewParser(src TokenSource) *Parser {
	return &Parser{src: src}
}

// Parse reads one complete document. The token stream must end right after it.
func (p *Parser) Parse() (*model.Document, error) {
	doc := &model.Document{}
	if err := p.parseDocument(doc); err != nil {
		return nil, err
	}

	tok, ok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, &ParseError{Pos: tok.Pos, Expected: "end of input", Got: describe(tok)}
	}
	return doc, nil
}

// document := "(" "identity" string "version" string "finances" fiscal_year ")"
func (p *Parser) parseDocument(doc *model.Document) error {
	if _, err := p.expect(BraceOpen); err != nil {
		return err
	}

	if err := p.expectSymbol("identity"); err != nil {
		return err
	}
	identity, err := p.expect(String)
	if err != nil {
		return err
	}
	if identity.Value != model.DefaultIdentity {
		return &ParseError{Pos: identity.Pos, Expected: fmt.Sprintf("string %q", model.DefaultIdentity), Got: describe(identity)}
	}
	doc.Identity = identity.Value

	if err := p.expectSymbol("version"); err != nil {
		return err
	}
	version, err := p.expect(String)
	if err != nil {
		return err
	}
	doc.Version = version.Value

	if err := p.expectSymbol("finances"); err != nil {
		return err
	}
	if err := p.parseFiscalYear(doc); err != nil {
		return err
	}

	_, err = p.expect(BraceClose)
	return err
}

// fiscal_year := "(" "fiscal-year" string date date account_map events ")"
func (p *Parser) parseFiscalYear(doc *model.Document) error {
	if _, err := p.expect(BraceOpen); err != nil {
		return err
	}
	if err := p.expectSymbol("fiscal-year"); err != nil {
		return err
	}

	name, err := p.expect(String)
	if err != nil {
		return err
	}
	doc.Name = name.Value

	if doc.Begin, err = p.parseDate(); err != nil {
		return err
	}
	if doc.End, err = p.parseDate(); err != nil {
		return err
	}
	if doc.Accounts, err = p.parseAccountMap(); err != nil {
		return err
	}
	if doc.Events, err = p.parseEvents(); err != nil {
		return err
	}

	_, err = p.expect(BraceClose)
	return err
}

// date := "(" "date" integer integer integer ")"
func (p *Parser) parseDate() (time.Time, error) {
	open, err := p.expect(BraceOpen)
	if err != nil {
		return time.Time{}, err
	}
	if err := p.expectSymbol("date"); err != nil {
		return time.Time{}, err
	}

	var parts [3]int
	for i := range parts {
		if parts[i], err = p.expectInt(); err != nil {
			return time.Time{}, err
		}
	}

	if _, err := p.expect(BraceClose); err != nil {
		return time.Time{}, err
	}

	date, err := model.NewDate(parts[0], parts[1], parts[2])
	if err != nil {
		return time.Time{}, &ParseError{Pos: open.Pos, Msg: err.Error(), Err: err}
	}
	return date, nil
}

// money := "(" "money" integer ")"
func (p *Parser) parseMoney() (int64, error) {
	if _, err := p.expect(BraceOpen); err != nil {
		return 0, err
	}
	if err := p.expectSymbol("money"); err != nil {
		return 0, err
	}

	tok, err := p.expect(Integer)
	if err != nil {
		return 0, err
	}
	cents, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return 0, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("invalid amount %s", tok.Value), Err: err}
	}

	if _, err := p.expect(BraceClose); err != nil {
		return 0, err
	}
	return cents, nil
}

// account_map := "(" "account-map" account* ")"
func (p *Parser) parseAccountMap() ([]model.Account, error) {
	if _, err := p.expect(BraceOpen); err != nil {
		return nil, err
	}
	if err := p.expectSymbol("account-map"); err != nil {
		return nil, err
	}

	accounts, err := p.parseAccountList()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(BraceClose); err != nil {
		return nil, err
	}
	return accounts, nil
}

// parseAccountList reads account* up to, not including, the closing brace.
func (p *Parser) parseAccountList() ([]model.Account, error) {
	var accounts []model.Account
	for {
		more, err := p.nextIs(BraceOpen)
		if err != nil {
			return nil, err
		}
		if !more {
			return accounts, nil
		}

		acct, err := p.parseAccount()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}
}

// account := "(" "account" integer string subaccounts? ")"
// subaccounts := "(" account* ")"
func (p *Parser) parseAccount() (model.Account, error) {
	var acct model.Account

	if _, err := p.expect(BraceOpen); err != nil {
		return acct, err
	}
	if err := p.expectSymbol("account"); err != nil {
		return acct, err
	}

	numTok, err := p.expect(Integer)
	if err != nil {
		return acct, err
	}
	number, err := strconv.Atoi(numTok.Value)
	switch {
	case err != nil || number < model.GroupNumber:
		return acct, &ParseError{Pos: numTok.Pos, Msg: fmt.Sprintf("invalid account number: %s", numTok.Value), Err: err}
	case number != model.GroupNumber:
		acct.Number = model.Num(number)
	}

	name, err := p.expect(String)
	if err != nil {
		return acct, err
	}
	acct.Name = name.Value

	hasSubs, err := p.nextIs(BraceOpen)
	if err != nil {
		return acct, err
	}
	if hasSubs {
		p.consume()
		if acct.Subaccounts, err = p.parseAccountList(); err != nil {
			return acct, err
		}
		if _, err := p.expect(BraceClose); err != nil {
			return acct, err
		}
	}

	_, err = p.expect(BraceClose)
	return acct, err
}

// events := "(" event* ")"
func (p *Parser) parseEvents() ([]model.Event, error) {
	if _, err := p.expect(BraceOpen); err != nil {
		return nil, err
	}

	var events []model.Event
	for {
		more, err := p.nextIs(BraceOpen)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}

		ev, err := p.parseEvent()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if _, err := p.expect(BraceClose); err != nil {
		return nil, err
	}
	return events, nil
}

// event := "(" "event" integer date string entries? ")"
// entries := "(" entry* ")"
func (p *Parser) parseEvent() (model.Event, error) {
	var ev model.Event

	if _, err := p.expect(BraceOpen); err != nil {
		return ev, err
	}
	if err := p.expectSymbol("event"); err != nil {
		return ev, err
	}

	var err error
	if ev.Number, err = p.expectInt(); err != nil {
		return ev, err
	}
	if ev.Date, err = p.parseDate(); err != nil {
		return ev, err
	}

	desc, err := p.expect(String)
	if err != nil {
		return ev, err
	}
	ev.Description = desc.Value

	hasEntries, err := p.nextIs(BraceOpen)
	if err != nil {
		return ev, err
	}
	if hasEntries {
		p.consume()
		for {
			more, err := p.nextIs(BraceOpen)
			if err != nil {
				return ev, err
			}
			if !more {
				break
			}

			entry, err := p.parseEntry()
			if err != nil {
				return ev, err
			}
			ev.Entries = append(ev.Entries, entry)
		}
		if _, err := p.expect(BraceClose); err != nil {
			return ev, err
		}
	}

	_, err = p.expect(BraceClose)
	return ev, err
}

// entry := "(" integer money ")"
func (p *Parser) parseEntry() (model.Entry, error) {
	var entry model.Entry

	if _, err := p.expect(BraceOpen); err != nil {
		return entry, err
	}

	var err error
	if entry.AccountNumber, err = p.expectInt(); err != nil {
		return entry, err
	}
	if entry.Cents, err = p.parseMoney(); err != nil {
		return entry, err
	}

	_, err = p.expect(BraceClose)
	return entry, err
}

// peek returns the next token without consuming it; ok is false at end of input.
func (p *Parser) peek() (tok Token, ok bool, err error) {
	if p.peeked {
		return p.next, true, nil
	}
	if p.atEOF {
		return Token{}, false, nil
	}

	tok, err = p.src.Next()
	if errors.Is(err, io.EOF) {
		p.atEOF = true
		return Token{}, false, nil
	}
	if err != nil {
		return Token{}, false, err
	}

	p.next = tok
	p.peeked = true
	p.last = tok.Pos
	return tok, true, nil
}

// consume drops the peeked token.
func (p *Parser) consume() {
	p.peeked = false
}

// nextIs reports whether the next token is of the given kind, without consuming it.
func (p *Parser) nextIs(kind TokenKind) (bool, error) {
	tok, ok, err := p.peek()
	if err != nil {
		return false, err
	}
	return ok && tok.Kind == kind, nil
}

// expect consumes the next token, which must be of the given kind.
func (p *Parser) expect(kind TokenKind) (Token, error) {
	tok, ok, err := p.peek()
	if err != nil {
		return Token{}, err
	}
	if !ok {
		return Token{}, &ParseError{Pos: p.last, Expected: describeKind(kind), Got: "end of input", Err: ErrUnexpectedEOF}
	}
	if tok.Kind != kind {
		return Token{}, &ParseError{Pos: tok.Pos, Expected: describeKind(kind), Got: describe(tok)}
	}
	p.consume()
	return tok, nil
}

// expectSymbol consumes the literal symbol name.
func (p *Parser) expectSymbol(name string) error {
	tok, err := p.expect(Symbol)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) && perr.Msg == "" {
			perr.Expected = fmt.Sprintf("symbol %q", name)
		}
		return err
	}
	if tok.Value != name {
		return &ParseError{Pos: tok.Pos, Expected: fmt.Sprintf("symbol %q", name), Got: describe(tok)}
	}
	return nil
}

// expectInt consumes an integer token and converts it.
func (p *Parser) expectInt() (int, error) {
	tok, err := p.expect(Integer)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok.Value)
	if err != nil {
		return 0, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("integer %s out of range", tok.Value), Err: err}
	}
	return n, nil
}

func describeKind(kind TokenKind) string {
	switch kind {
	case BraceOpen:
		return `"("`
	case BraceClose:
		return `")"`
	default:
		return kind.String()
	}
}

func describe(tok Token) string {
	if tok.Kind == BraceOpen || tok.Kind == BraceClose {
		return describeKind(tok.Kind)
	}
	return fmt.Sprintf("%s %q", tok.Kind, tok.Value)
}
