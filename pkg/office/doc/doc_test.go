package doc

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordsearch/pkg/office/cfb"
	"wordsearch/pkg/office/doc/fib"
	"wordsearch/pkg/office/doc/fib/clx"
)

const (
	compressedAt = 0x200
	unicodeAt    = 0x300
)

// buildDocument returns a WordDocument stream holding one compressed and
// one UTF-16 piece, and the matching 1Table stream.
func buildDocument(t *testing.T, ascii, wide string) ([]byte, []byte) {
	t.Helper()
	le := binary.LittleEndian

	units := utf16.Encode([]rune(wide))
	word := make([]byte, unicodeAt+2*len(units))
	le.PutUint16(word[0x00:], fib.WordIdent)
	le.PutUint16(word[0x02:], 0x00C1)
	le.PutUint16(word[0x0A:], 0x0200)
	copy(word[compressedAt:], ascii)
	for i, u := range units {
		le.PutUint16(word[unicodeAt+2*i:], u)
	}

	var clxBuf bytes.Buffer
	// one Prc with two bytes of properties
	clxBuf.Write([]byte{0x01, 0x02, 0x00, 0xAA, 0xBB})
	clxBuf.WriteByte(0x02)
	binary.Write(&clxBuf, le, uint32(3*4+2*8))
	for _, cp := range []uint32{0, uint32(len(ascii)), uint32(len(ascii) + len(units))} {
		binary.Write(&clxBuf, le, cp)
	}
	for _, fc := range []uint32{compressedAt*2 | 0x40000000, unicodeAt} {
		binary.Write(&clxBuf, le, uint16(0))
		binary.Write(&clxBuf, le, fc)
		binary.Write(&clxBuf, le, uint16(0))
	}

	table := append([]byte{0xFF, 0xFF}, clxBuf.Bytes()...)
	le.PutUint32(word[0x01A2:], 2)
	le.PutUint32(word[0x01A6:], uint32(clxBuf.Len()))
	return word, table
}

func TestExtractText(t *testing.T) {
	word, table := buildDocument(t, "Hello\r", "Wörld \x13 HYPERLINK x \x14link\x15\r")

	text, err := ExtractText(word, map[string][]byte{"1Table": table})
	require.NoError(t, err)
	assert.Equal(t, "Hello\rWörld \x13 HYPERLINK x \x14link\x15\r", text)
	assert.Equal(t, "Hello\nWörld link", CleanText(text))
}

func TestExtractText_MissingTable(t *testing.T) {
	word, table := buildDocument(t, "a", "b")
	_, err := ExtractText(word, map[string][]byte{"0Table": table})
	assert.ErrorIs(t, err, cfb.ErrStreamNotFound)
}

func TestExtractText_NotWord(t *testing.T) {
	_, err := ExtractText([]byte("short"), nil)
	assert.ErrorIs(t, err, fib.ErrNotWord)
}

func TestPieces_Malformed(t *testing.T) {
	_, err := clx.Pieces([]byte{0x02, 0xFF, 0, 0, 0})
	assert.ErrorIs(t, err, clx.ErrMalformed)

	_, err = clx.Pieces([]byte{0x07})
	assert.ErrorIs(t, err, clx.ErrMalformed)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\tb\nc", CleanText("a\x07b\x0bc\r\r"))
	assert.Equal(t, "outer", CleanText("\x13 IF \x13 PAGE \x14 1\x15 \x14outer\x15"))
}
