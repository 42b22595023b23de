package plaintxt

import (
	"fmt"
	"os"

	"wordsearch/pkg/plaintext/charset"
)

// TextPlainParser reads word lists and other flat text, decoding legacy
// charsets to UTF-8.
type TextPlainParser struct{}

func (p *TextPlainParser) Parse(filePath string) ([]byte, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read text file %s: %w", filePath, err)
	}
	return charset.ToUTF8(raw)
}
