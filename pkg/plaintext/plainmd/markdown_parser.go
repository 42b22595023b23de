package plainmd

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"wordsearch/pkg/logger"
)

// TextMarkdownParser extracts the prose and code of a Markdown document,
// one block or code line per output line.
type TextMarkdownParser struct{}

var invisibleCharsRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F\x{200B}-\x{200F}\x{FEFF}]`)

// ParseMarkdown returns the text of content without Markdown syntax.
func (p *TextMarkdownParser) ParseMarkdown(content []byte) ([]byte, error) {
	root := goldmark.New().Parser().Parse(text.NewReader(content))

	var lines []string
	var line strings.Builder
	flush := func() {
		if s := strings.TrimSpace(invisibleCharsRegex.ReplaceAllString(line.String(), "")); s != "" {
			lines = append(lines, s)
		}
		line.Reset()
	}

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if node.Type() == ast.TypeBlock {
				flush()
			}
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			segs := n.Lines()
			for i := 0; i < segs.Len(); i++ {
				seg := segs.At(i)
				line.Write(seg.Value(content))
				flush()
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			line.Write(n.Segment.Value(content))
			if n.SoftLineBreak() || n.HardLineBreak() {
				line.WriteByte(' ')
			}
		case *ast.String:
			line.Write(n.Value)
		case *ast.AutoLink:
			line.Write(n.Label(content))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}

	logger.DebugLogger.Printf("markdown: %d text lines", len(lines))
	return []byte(strings.Join(lines, "\n")), nil
}

func (p *TextMarkdownParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read markdown file %s: %w", filePath, err)
	}
	return p.ParseMarkdown(content)
}
