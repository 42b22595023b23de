package docx

import (
	"fmt"
	"regexp"
	"strings"

	"wordsearch/pkg/logger"
	"wordsearch/pkg/office/ooxml"
)

// OfficeDocxParser extracts the paragraphs of a Word document, followed by
// its headers, footers and notes.
type OfficeDocxParser struct{}

var rules = ooxml.Rules{
	Text:   []string{"t"},
	Blocks: []string{"p"},
	Spaces: []string{"tab"},
	Breaks: []string{"br", "cr"},
}

var extraParts = regexp.MustCompile(`^(header|footer|footnotes|endnotes)\d*\.xml$`)

func (p *OfficeDocxParser) Parse(filePath string) ([]byte, error) {
	pkg, err := ooxml.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	body := pkg.Find("word/document.xml")
	if body == nil {
		return nil, fmt.Errorf("docx %s: word/document.xml not found", filePath)
	}
	lines, err := ooxml.Lines(body, rules)
	if err != nil {
		return nil, fmt.Errorf("docx %s: %w", filePath, err)
	}

	extra := ooxml.PartsText(pkg.Parts("word", extraParts), rules)
	logger.Logger.Printf("docx %s: %d body lines, %d header/footer/note lines", filePath, len(lines), len(extra))

	return []byte(strings.Join(append(lines, extra...), "\n")), nil
}
