package tappio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cleared-dev/tappio/internal/model"
)

// Options configures the writer.
type Options struct {
	// Pretty breaks the document into indented lines. Compact output is a single line.
	Pretty bool

	// Indent is written once per nesting level in pretty mode (default: two spaces).
	Indent string

	// Newline ends each line in pretty mode (default: "\r\n").
	Newline string
}

// DefaultOptions returns compact output with the classic Tappio line ending.
func DefaultOptions() Options {
	return Options{
		Pretty:  false,
		Indent:  "  ",
		Newline: "\r\n",
	}
}

// PrettyOptions returns DefaultOptions with pretty printing on.
func PrettyOptions() Options {
	opts := DefaultOptions()
	opts.Pretty = true
	return opts
}

type atomKind uint8

const (
	atomNone atomKind = iota // nothing written yet on this line
	atomOpen
	atomClose
	atomWord
)

// Writer serializes documents. Line breaks are requested with newLine and
// only materialized right before the next atom, so no line ends in
// trailing indentation.
type Writer struct {
	w       *bufio.Writer
	opts    Options
	prev    atomKind
	depth   int
	pending bool
	err     error
}

// NewWriter creates a writer emitting to w. Empty Indent or Newline fall back to defaults.
func NewWriter(w io.Writer, opts Options) *Writer {
	def := DefaultOptions()
	if opts.Indent == "" {
		opts.Indent = def.Indent
	}
	if opts.Newline == "" {
		opts.Newline = def.Newline
	}
	return &Writer{w: bufio.NewWriter(w), opts: opts}
}

// WriteDocument writes doc and flushes the underlying writer.
func (w *Writer) WriteDocument(doc *model.Document) error {
	w.open()
	w.word("identity")
	w.str(doc.Identity)
	w.word("version")
	w.str(doc.Version)
	w.word("finances")
	w.newLine(1)

	w.open()
	w.word("fiscal-year")
	w.str(doc.Name)
	w.date(doc.Begin)
	w.date(doc.End)
	w.newLine(1)
	w.accountMap(doc.Accounts)
	w.newLine(0)
	w.events(doc.Events)

	w.newLine(-1)
	w.close()
	w.newLine(-1)
	w.close()
	w.flushLine()

	if w.err != nil {
		return w.err
	}
	if w.depth != 0 {
		return fmt.Errorf("%w: depth %d after document", ErrUnbalancedIndent, w.depth)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

func (w *Writer) accountMap(accounts []model.Account) {
	w.open()
	w.word("account-map")
	w.newLine(1)
	for i := range accounts {
		w.account(&accounts[i])
		w.newLine(0)
	}
	w.newLine(-1)
	w.close()
}

func (w *Writer) account(acct *model.Account) {
	w.open()
	w.word("account")
	w.integer(int64(acct.NumberOr(model.GroupNumber)))
	w.str(acct.Name)

	w.open()
	if len(acct.Subaccounts) > 0 {
		w.newLine(1)
		for i := range acct.Subaccounts {
			w.account(&acct.Subaccounts[i])
			w.newLine(0)
		}
		w.newLine(-1)
	}
	w.close()

	w.close()
}

func (w *Writer) events(events []model.Event) {
	w.open()
	w.newLine(1)
	for i := range events {
		w.event(&events[i])
		w.newLine(0)
	}
	w.newLine(-1)
	w.close()
}

func (w *Writer) event(ev *model.Event) {
	w.open()
	w.word("event")
	w.integer(int64(ev.Number))
	w.date(ev.Date)
	w.str(ev.Description)

	w.open()
	if len(ev.Entries) > 0 {
		w.newLine(1)
		for _, entry := range ev.Entries {
			w.open()
			w.integer(int64(entry.AccountNumber))
			w.money(entry.Cents)
			w.close()
			w.newLine(0)
		}
		w.newLine(-1)
	}
	w.close()

	w.close()
}

func (w *Writer) date(t time.Time) {
	w.open()
	w.word("date")
	w.integer(int64(t.Year()))
	w.integer(int64(t.Month()))
	w.integer(int64(t.Day()))
	w.close()
}

func (w *Writer) money(cents int64) {
	w.open()
	w.word("money")
	w.integer(cents)
	w.close()
}

func (w *Writer) open() {
	w.atom(atomOpen, "(")
}

func (w *Writer) close() {
	w.atom(atomClose, ")")
}

func (w *Writer) word(s string) {
	w.atom(atomWord, s)
}

func (w *Writer) integer(n int64) {
	w.atom(atomWord, strconv.FormatInt(n, 10))
}

func (w *Writer) str(s string) {
	w.atom(atomWord, `"`+escape(s)+`"`)
}

// newLine requests a line break and shifts the indentation of the lines that follow.
func (w *Writer) newLine(indent int) {
	w.depth += indent
	w.pending = true
}

// atom writes one token, preceded by a pending line break and a separating
// space where the spacing rule asks for one.
func (w *Writer) atom(kind atomKind, text string) {
	if w.pending {
		w.flushLine()
	}
	if needsSpace(w.prev, kind) {
		w.write(" ")
	}
	w.write(text)
	w.prev = kind
}

// flushLine materializes a requested line break. Compact output has none.
func (w *Writer) flushLine() {
	if !w.opts.Pretty {
		return
	}
	w.write(w.opts.Newline)
	w.write(strings.Repeat(w.opts.Indent, max(w.depth, 0)))
	w.pending = false
	w.prev = atomNone
}

func (w *Writer) write(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = fmt.Errorf("writing output: %w", err)
	}
}

// needsSpace: ") (" is spaced; otherwise there is no space after "(" or before ")".
func needsSpace(prev, cur atomKind) bool {
	switch {
	case prev == atomNone:
		return false
	case prev == atomClose && cur == atomOpen:
		return true
	default:
		return prev != atomOpen && cur != atomClose
	}
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escape(s string) string {
	return escaper.Replace(s)
}
