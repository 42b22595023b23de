// Package charset converts extracted bytes to UTF-8. Word lists arrive in
// whatever encoding their author used; the trie only accepts ASCII, so the
// decoder's job is to keep ASCII words intact and turn the rest into
// well-formed UTF-8 the index can reject cleanly.
package charset

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"wordsearch/pkg/logger"
)

// minConfidence is the chardet score below which a guess is ignored.
const minConfidence = 30

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Lookup returns the decoder for a chardet charset name, or nil when the
// name is unknown.
func Lookup(name string) encoding.Encoding {
	switch strings.ToLower(name) {
	case "utf-8", "ascii", "us-ascii":
		return encoding.Nop
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "gbk", "gb2312", "gb-18030", "gb18030":
		return simplifiedchinese.GB18030
	case "big5":
		return traditionalchinese.Big5
	case "iso-8859-1":
		return charmap.ISO8859_1
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "windows-1252":
		return charmap.Windows1252
	case "windows-1251":
		return charmap.Windows1251
	case "koi8-r":
		return charmap.KOI8R
	}
	return nil
}

// Detect guesses the charset of raw. BOMs win over statistics and valid
// UTF-8 wins over any guess.
func Detect(raw []byte) string {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return "UTF-8"
	case bytes.HasPrefix(raw, bomUTF16LE):
		return "UTF-16LE"
	case bytes.HasPrefix(raw, bomUTF16BE):
		return "UTF-16BE"
	case utf8.Valid(raw) && bytes.IndexByte(raw, 0) < 0:
		return "UTF-8"
	}

	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil || result.Confidence < minConfidence {
		logger.DebugLogger.Printf("charset detection inconclusive (%v), assuming windows-1252", err)
		return "windows-1252"
	}
	logger.DebugLogger.Printf("detected charset %s (confidence %d)", result.Charset, result.Confidence)
	return result.Charset
}

// ToUTF8 decodes raw into UTF-8 using the detected charset. Charsets
// without a decoder are read as windows-1252.
func ToUTF8(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return raw, nil
	}
	name := Detect(raw)
	enc := Lookup(name)
	if enc == nil {
		logger.Logger.Printf("unsupported charset %s, reading as windows-1252", name)
		enc = charmap.Windows1252
	}
	if enc == encoding.Nop {
		return bytes.TrimPrefix(raw, bomUTF8), nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), trimBOM(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return decoded, nil
}

func trimBOM(raw []byte) []byte {
	if bytes.HasPrefix(raw, bomUTF16LE) || bytes.HasPrefix(raw, bomUTF16BE) {
		return raw[2:]
	}
	return raw
}
