package plainhtml

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TextHTMLParser extracts the visible text of an HTML page, one text node
// per output line.
type TextHTMLParser struct{}

var (
	invisibleCharsRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F\x{200B}-\x{200F}\x{2028}\x{2029}\x{FEFF}]`)
	whitespaceRegex     = regexp.MustCompile(`[\s\x{A0}\x{2000}-\x{200A}\x{202F}\x{205F}\x{3000}]+`)
)

// skipped elements never render text.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Head:     true,
	atom.Meta:     true,
	atom.Link:     true,
	atom.Noscript: true,
	atom.Template: true,
}

// ParseHTML returns the visible text of htmlContent.
func (p *TextHTMLParser) ParseHTML(htmlContent []byte) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("html parse: %w", err)
	}

	var lines []string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if line := clean(n.Data); line != "" {
				lines = append(lines, line)
			}
			return
		case html.ElementNode:
			if skipped[n.DataAtom] {
				return
			}
			if n.DataAtom == atom.Img {
				for _, a := range n.Attr {
					if a.Key == "alt" {
						if line := clean(a.Val); line != "" {
							lines = append(lines, line)
						}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	return []byte(strings.Join(lines, "\n")), nil
}

func clean(s string) string {
	s = invisibleCharsRegex.ReplaceAllString(s, "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func (p *TextHTMLParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read html file %s: %w", filePath, err)
	}
	return p.ParseHTML(content)
}
