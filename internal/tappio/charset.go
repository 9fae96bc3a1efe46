package tappio

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Charset is the byte encoding of a ledger file. The lexer works on UTF-8;
// older ledgers are often Latin-1 or Windows-1252.
type Charset string

const (
	UTF8   Charset = "utf-8"
	Latin1 Charset = "latin1"
	CP1252 Charset = "cp1252"
)

// ParseCharset maps a user-supplied name to a Charset.
func ParseCharset(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return Latin1, nil
	case "cp1252", "windows-1252":
		return CP1252, nil
	default:
		return "", fmt.Errorf("unknown charset %q", name)
	}
}

func (c Charset) encoding() (encoding.Encoding, error) {
	switch c {
	case "", UTF8:
		return nil, nil
	case Latin1:
		return charmap.ISO8859_1, nil
	case CP1252:
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("unknown charset %q", string(c))
	}
}

// NewDecodingReader returns a reader yielding UTF-8 text decoded from r.
func NewDecodingReader(r io.Reader, cs Charset) (io.Reader, error) {
	enc, err := cs.encoding()
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// NewEncodingWriter returns a writer encoding UTF-8 text to cs before passing
// it to w. Close flushes buffered output but does not close w. Characters
// the charset cannot represent fail the write.
func NewEncodingWriter(w io.Writer, cs Charset) (io.WriteCloser, error) {
	enc, err := cs.encoding()
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nopCloser{w}, nil
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
