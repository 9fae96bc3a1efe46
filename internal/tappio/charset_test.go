package tappio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharset(t *testing.T) {
	tests := []struct {
		in      string
		want    Charset
		wantErr bool
	}{
		{"", UTF8, false},
		{"UTF-8", UTF8, false},
		{"latin1", Latin1, false},
		{"ISO-8859-1", Latin1, false},
		{"cp1252", CP1252, false},
		{"windows-1252", CP1252, false},
		{"ebcdic", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCharset(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseCharset(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseCharset(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestDecodingReaderLatin1(t *testing.T) {
	r, err := NewDecodingReader(bytes.NewReader([]byte("\"K\xe4teinen\"")), Latin1)
	require.NoError(t, err)

	tokens, err := Tokenize(r)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "Käteinen", tokens[0].Value)
}

func TestEncodingWriterCP1252(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewEncodingWriter(&buf, CP1252)
	require.NoError(t, err)

	_, err = io.WriteString(w, "5 €")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, []byte("5 \x80"), buf.Bytes())
}

func TestUTF8PassesThrough(t *testing.T) {
	src := strings.NewReader("ä")
	r, err := NewDecodingReader(src, UTF8)
	require.NoError(t, err)
	assert.Same(t, src, r)
}

func TestSaveAndLoadLatin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.tappio")
	doc := sampleDocument()

	require.NoError(t, SaveFile(path, doc, DefaultOptions(), Latin1))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Oma p\xe4\xe4oma")

	_, err = LoadFile(path, UTF8)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr, "Latin-1 bytes are not UTF-8")

	got, err := LoadFile(path, Latin1)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestSaveLatin1RejectsUnmappableText(t *testing.T) {
	doc := sampleDocument()
	doc.Name = "€ 2010"

	err := SaveFile(filepath.Join(t.TempDir(), "ledger.tappio"), doc, DefaultOptions(), Latin1)
	assert.Error(t, err)
}

func TestUnknownCharset(t *testing.T) {
	_, err := NewDecodingReader(strings.NewReader(""), Charset("koi8"))
	assert.Error(t, err)
	_, err = NewEncodingWriter(&bytes.Buffer{}, Charset("koi8"))
	assert.Error(t, err)
}
