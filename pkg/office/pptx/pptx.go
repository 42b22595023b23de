package pptx

import (
	"fmt"
	"regexp"
	"strings"

	"wordsearch/pkg/logger"
	"wordsearch/pkg/office/ooxml"
)

// OfficePptxParser extracts slide text in slide order, then the speaker
// notes.
type OfficePptxParser struct{}

var rules = ooxml.Rules{
	Text:   []string{"t"},
	Blocks: []string{"p"},
	Breaks: []string{"br"},
}

var (
	slidePart = regexp.MustCompile(`^slide\d+\.xml$`)
	notesPart = regexp.MustCompile(`^notesSlide\d+\.xml$`)
)

func (p *OfficePptxParser) Parse(filePath string) ([]byte, error) {
	pkg, err := ooxml.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	slides := pkg.Parts("ppt/slides", slidePart)
	if len(slides) == 0 {
		return nil, fmt.Errorf("pptx %s: no slides found", filePath)
	}
	lines := ooxml.PartsText(slides, rules)
	lines = append(lines, ooxml.PartsText(pkg.Parts("ppt/notesSlides", notesPart), rules)...)
	logger.Logger.Printf("pptx %s: %d slides, %d lines", filePath, len(slides), len(lines))

	return []byte(strings.Join(lines, "\n")), nil
}
