package vsdx

import (
	"fmt"
	"regexp"
	"strings"

	"wordsearch/pkg/logger"
	"wordsearch/pkg/office/ooxml"
)

// OfficeVsdxParser extracts shape text from the pages of a Visio drawing.
type OfficeVsdxParser struct{}

var rules = ooxml.Rules{
	Text:   []string{"Text"},
	Blocks: []string{"Text"},
}

var pagePart = regexp.MustCompile(`^page\d+\.xml$`)

func (v *OfficeVsdxParser) Parse(filePath string) ([]byte, error) {
	pkg, err := ooxml.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	pages := pkg.Parts("visio/pages", pagePart)
	if len(pages) == 0 {
		return nil, fmt.Errorf("vsdx %s: no pages found", filePath)
	}
	lines := ooxml.PartsText(pages, rules)
	logger.Logger.Printf("vsdx %s: %d pages, %d shape texts", filePath, len(pages), len(lines))

	return []byte(strings.Join(lines, "\n")), nil
}
