// Package tappio reads and writes the Tappio ledger format: a document
// header, three account trees and a list of dated events, written as
// S-expressions:
//
//	(identity "Tappio" version "..." finances
//	  (fiscal-year "2010" (date 2010 1 1) (date 2010 12 31)
//	    (account-map (account -1 "Vastaavaa" (...)) ...)
//	    ((event 1 (date 2010 1 1) "..." ((101 (money 123456)) ...)) ...)))
//
// Text goes through a Lexer, a Parser and comes out as a model.Document;
// a Writer turns the document back into text. Writing and re-reading a
// parsed document yields an equal document.
package tappio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cleared-dev/tappio/internal/model"
)

// Parse reads a document from UTF-8 text.
func Parse(r io.Reader) (*model.Document, error) {
	return NewParser(NewLexer(r)).Parse()
}

// ParseString reads a document from s.
func ParseString(s string) (*model.Document, error) {
	return Parse(strings.NewReader(s))
}

// Write serializes doc to w.
func Write(w io.Writer, doc *model.Document, opts Options) error {
	return NewWriter(w, opts).WriteDocument(doc)
}

// Marshal serializes doc to a byte slice.
func Marshal(doc *model.Document, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Serialize returns doc as text, compact or pretty, with default indentation.
// Writing to memory cannot fail, so a writer defect panics.
func Serialize(doc *model.Document, pretty bool) string {
	opts := DefaultOptions()
	opts.Pretty = pretty
	data, err := Marshal(doc, opts)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// LoadFile parses the document at path, decoding it from cs.
func LoadFile(path string, cs Charset) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	r, err := NewDecodingReader(f, cs)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}

// SaveFile writes doc to path, encoding it to cs.
func SaveFile(path string, doc *model.Document, opts Options, cs Charset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	defer f.Close()

	w, err := NewEncodingWriter(f, cs)
	if err != nil {
		return err
	}
	if err := Write(w, doc, opts); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
