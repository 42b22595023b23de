package doc

import (
	"fmt"
	"strings"

	"wordsearch/pkg/logger"
	"wordsearch/pkg/office/cfb"
	"wordsearch/pkg/office/doc/fib"
	"wordsearch/pkg/office/doc/fib/clx"
)

const (
	wordDocumentStream = "WordDocument"
	minRunLength       = 4
)

// OfficeDocParser extracts the text of Word 97-2003 documents through the
// piece table, falling back to a scan for UTF-16 text runs.
type OfficeDocParser struct{}

func (p *OfficeDocParser) Parse(filePath string) ([]byte, error) {
	streams, err := cfb.ReadStreams(filePath, wordDocumentStream, "0Table", "1Table")
	if err != nil {
		return nil, err
	}
	wordDocument, ok := streams[wordDocumentStream]
	if !ok {
		return nil, fmt.Errorf("doc %s: %q: %w", filePath, wordDocumentStream, cfb.ErrStreamNotFound)
	}

	text, err := ExtractText(wordDocument, streams)
	if err != nil {
		logger.Logger.Printf("doc %s: piece table: %v, scanning for text runs", filePath, err)
		text = strings.Join(cfb.TextRuns(wordDocument, minRunLength), "\n")
	}
	return []byte(CleanText(text)), nil
}

// ExtractText rebuilds the document text from the WordDocument stream and
// the table streams.
func ExtractText(wordDocument []byte, streams map[string][]byte) (string, error) {
	f, err := fib.Parse(wordDocument)
	if err != nil {
		return "", err
	}
	table, ok := streams[f.TableStream()]
	if !ok {
		return "", fmt.Errorf("%q: %w", f.TableStream(), cfb.ErrStreamNotFound)
	}
	raw, err := f.Clx(table)
	if err != nil {
		return "", err
	}
	pieces, err := clx.Pieces(raw)
	if err != nil {
		return "", err
	}
	logger.DebugLogger.Printf("doc: nFib 0x%04x, %d pieces", f.NFib, len(pieces))
	return clx.Text(wordDocument, pieces), nil
}

const (
	fieldBegin     = '\x13'
	fieldSeparator = '\x14'
	fieldEnd       = '\x15'
)

// CleanText turns Word control characters into line breaks and tabs and
// keeps only the displayed result of fields.
func CleanText(text string) string {
	var sb strings.Builder
	// inInstruction[i] is true while inside the code part of a nested field
	var inInstruction []bool
	hidden := func() bool {
		for _, h := range inInstruction {
			if h {
				return true
			}
		}
		return false
	}

	for _, r := range text {
		switch r {
		case fieldBegin:
			inInstruction = append(inInstruction, true)
			continue
		case fieldSeparator:
			if n := len(inInstruction); n > 0 {
				inInstruction[n-1] = false
			}
			continue
		case fieldEnd:
			if n := len(inInstruction); n > 0 {
				inInstruction = inInstruction[:n-1]
			}
			continue
		}
		if hidden() {
			continue
		}
		switch r {
		case '\r', '\x0b', '\x0c', '\x0e':
			sb.WriteByte('\n')
		case '\x07', '\t':
			sb.WriteByte('\t')
		case '\x01', '\x08', '\x02', '\x03', '\x04', '\x05':
			// embedded objects, drawings and note references
		default:
			sb.WriteRune(r)
		}
	}

	lines := strings.Split(sb.String(), "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
