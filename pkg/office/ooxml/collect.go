package ooxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Rules tells Collect which elements matter. Names are local names, the
// namespace prefix is ignored.
type Rules struct {
	// Text elements contribute their character data, including nested ones.
	Text []string
	// Blocks end the current line when they close.
	Blocks []string
	// Spaces are empty elements standing for a blank (w:tab, text:s).
	Spaces []string
	// Breaks are empty elements standing for a line break (w:br).
	Breaks []string
}

var whitespace = regexp.MustCompile(`[\s\x{A0}]+`)

type collector struct {
	rules  Rules
	lines  []string
	line   strings.Builder
	inText int
}

func (c *collector) flush() {
	text := strings.TrimSpace(whitespace.ReplaceAllString(c.line.String(), " "))
	if text != "" {
		c.lines = append(c.lines, text)
	}
	c.line.Reset()
}

// Collect streams an XML part and returns its text, one block per line.
func Collect(r io.Reader, rules Rules) ([]string, error) {
	c := &collector{rules: rules}
	decoder := xml.NewDecoder(r)
	decoder.Strict = false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return c.lines, fmt.Errorf("xml decode: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			name := t.Name.Local
			if lo.Contains(rules.Text, name) {
				c.inText++
			}
			if lo.Contains(rules.Spaces, name) {
				c.line.WriteByte(' ')
			}
			if lo.Contains(rules.Breaks, name) {
				c.flush()
			}
		case xml.EndElement:
			name := t.Name.Local
			if lo.Contains(rules.Text, name) && c.inText > 0 {
				c.inText--
			}
			if lo.Contains(rules.Blocks, name) {
				c.flush()
			}
		case xml.CharData:
			if c.inText > 0 {
				c.line.Write(t)
			}
		}
	}
	c.flush()

	return c.lines, nil
}
