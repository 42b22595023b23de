package odt

import (
	"fmt"
	"strings"

	"wordsearch/pkg/logger"
	"wordsearch/pkg/office/ooxml"
)

// OfficeOdtParser extracts the paragraphs and headings of an OpenDocument
// text file.
type OfficeOdtParser struct{}

var rules = ooxml.Rules{
	Text:   []string{"p", "h"},
	Blocks: []string{"p", "h"},
	Spaces: []string{"s", "tab"},
	Breaks: []string{"line-break"},
}

func (p *OfficeOdtParser) Parse(filePath string) ([]byte, error) {
	pkg, err := ooxml.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	content := pkg.Find("content.xml")
	if content == nil {
		return nil, fmt.Errorf("odt %s: content.xml not found", filePath)
	}
	lines, err := ooxml.Lines(content, rules)
	if err != nil {
		return nil, fmt.Errorf("odt %s: %w", filePath, err)
	}
	logger.Logger.Printf("odt %s: %d lines", filePath, len(lines))

	return []byte(strings.Join(lines, "\n")), nil
}
