package plainxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"wordsearch/pkg/logger"
)

// TextXMLParser extracts character data from an XML document, one text
// node per output line.
type TextXMLParser struct{}

var (
	invisibleCharsRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F\x{200B}-\x{200F}\x{2028}\x{2029}\x{FEFF}]`)
	whitespaceRegex     = regexp.MustCompile(`[\s\x{A0}\x{2000}-\x{200A}\x{202F}\x{205F}\x{3000}]+`)
)

// ParseXML returns the text nodes of xmlContent. Malformed markup is
// tolerated the way browsers tolerate HTML.
func (p *TextXMLParser) ParseXML(xmlContent []byte) ([]byte, error) {
	decoder := xml.NewDecoder(bytes.NewReader(xmlContent))
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		// declared charsets are read as-is
		return input, nil
	}

	var lines []string
	depth := 0
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xml decode: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth > 0 {
				depth--
			}
		case xml.CharData:
			text := invisibleCharsRegex.ReplaceAllString(string(t), "")
			text = strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
			if text != "" {
				logger.DebugLogger.Printf("xml text at depth %d: %s", depth, text)
				lines = append(lines, text)
			}
		}
	}

	return []byte(strings.Join(lines, "\n")), nil
}

func (p *TextXMLParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read xml file %s: %w", filePath, err)
	}
	return p.ParseXML(content)
}
