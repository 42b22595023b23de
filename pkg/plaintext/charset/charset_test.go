package charset

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDetect_BOMsAndUTF8(t *testing.T) {
	assert.Equal(t, "UTF-8", Detect([]byte("plain ascii words")))
	assert.Equal(t, "UTF-8", Detect(append([]byte{0xEF, 0xBB, 0xBF}, "x"...)))
	assert.Equal(t, "UTF-16LE", Detect([]byte{0xFF, 0xFE, 'a', 0}))
	assert.Equal(t, "UTF-16BE", Detect([]byte{0xFE, 0xFF, 0, 'a'}))
}

func TestToUTF8(t *testing.T) {
	t.Run("utf-8 bom stripped", func(t *testing.T) {
		out, err := ToUTF8(append([]byte{0xEF, 0xBB, 0xBF}, "cat\ndog"...))
		require.NoError(t, err)
		assert.Equal(t, "cat\ndog", string(out))
	})

	t.Run("utf-16le with bom", func(t *testing.T) {
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		raw, err := enc.Bytes([]byte("cat\ndog"))
		require.NoError(t, err)

		out, err := ToUTF8(raw)
		require.NoError(t, err)
		assert.Equal(t, "cat\ndog", string(out))
	})

	t.Run("latin-1 becomes valid utf-8", func(t *testing.T) {
		raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("café\nnaïve\nplain"))
		require.NoError(t, err)

		out, err := ToUTF8(raw)
		require.NoError(t, err)
		assert.True(t, utf8.Valid(out))
		assert.Contains(t, string(out), "plain")
	})

	t.Run("empty", func(t *testing.T) {
		out, err := ToUTF8(nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestLookup(t *testing.T) {
	assert.NotNil(t, Lookup("GB2312"))
	assert.NotNil(t, Lookup("Big5"))
	assert.NotNil(t, Lookup("windows-1252"))
	assert.Nil(t, Lookup("EBCDIC"))
}
