package pdf

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	ledongthucpdf "github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
	rscpdf "github.com/rsc/pdf"

	"wordsearch/pkg/logger"
	"wordsearch/pkg/plaintext/charset"
)

// ErrNotPDF is returned when the file does not start with a PDF header.
var ErrNotPDF = errors.New("not a PDF file")

// OfficePdfParser extracts PDF text, trying each extractor in turn until
// one yields text.
type OfficePdfParser struct{}

type extractor struct {
	name string
	fn   func(filePath string) ([]byte, error)
}

var extractors = []extractor{
	{"ledongthuc/pdf", parseWithLedongthuc},
	{"rsc/pdf", parseWithRsc},
	{"pdfcpu", parseWithPdfcpu},
	{"literal scan", parseBinary},
}

func (p *OfficePdfParser) Parse(filePath string) ([]byte, error) {
	var errs []error
	for _, e := range extractors {
		text, err := guarded(e.fn, filePath)
		if err == nil && len(bytes.TrimSpace(text)) > 0 {
			logger.Logger.Printf("pdf %s: %d bytes extracted with %s", filePath, len(text), e.name)
			return text, nil
		}
		if err == nil {
			err = errors.New("no text")
		}
		logger.Logger.Printf("pdf %s: %s: %v", filePath, e.name, err)
		errs = append(errs, fmt.Errorf("%s: %w", e.name, err))
	}
	return nil, fmt.Errorf("pdf %s: %w", filePath, errors.Join(errs...))
}

// guarded turns a panic inside a third-party reader into an error; the
// readers panic on malformed cross-reference tables.
func guarded(fn func(string) ([]byte, error), filePath string) (text []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(filePath)
}

func parseWithLedongthuc(filePath string) ([]byte, error) {
	f, r, err := ledongthucpdf.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			logger.DebugLogger.Printf("pdf: page %d missing", i)
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			logger.DebugLogger.Printf("pdf: page %d: %v", i, err)
			continue
		}
		buf.WriteString(content)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func parseWithRsc(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	r, err := rscpdf.NewReader(file, info.Size())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		texts := page.Content().Text
		for j, t := range texts {
			buf.WriteString(t.S)
			// rsc/pdf yields one glyph run per Text; break lines on baseline changes
			if j+1 < len(texts) && texts[j+1].Y != t.Y {
				buf.WriteByte('\n')
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// parseWithPdfcpu lets pdfcpu decode the page content streams and scans
// them for text operators.
func parseWithPdfcpu(filePath string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "pdf_extract_")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := pdfcpu.ExtractContentFile(filePath, tmpDir, nil, nil); err != nil {
		return nil, err
	}

	var lines []string
	err = filepath.WalkDir(tmpDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		lines = append(lines, ScanContent(data)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return charset.ToUTF8([]byte(strings.Join(lines, "\n")))
}

var streamRegex = regexp.MustCompile(`(?s)stream\r?\n(.*?)\r?\nendstream`)

// parseBinary inflates every stream it can and scans it, along with
// uncompressed content, for text operators.
func parseBinary(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, ErrNotPDF
	}

	var lines []string
	for _, m := range streamRegex.FindAllSubmatch(data, -1) {
		content := m[1]
		if zr, err := zlib.NewReader(bytes.NewReader(content)); err == nil {
			if inflated, err := io.ReadAll(zr); err == nil {
				content = inflated
			}
			zr.Close()
		}
		lines = append(lines, ScanContent(content)...)
	}
	return charset.ToUTF8([]byte(strings.Join(lines, "\n")))
}

var (
	textBlockRegex = regexp.MustCompile(`(?s)\bBT\b(.*?)\bET\b`)
	showTextRegex  = regexp.MustCompile(`(?s)\[((?:\\.|[^\]\\])*)\]\s*TJ|\(((?:\\.|[^)\\])*)\)\s*(?:Tj|'|")`)
	literalRegex   = regexp.MustCompile(`(?s)\(((?:\\.|[^)\\])*)\)`)
)

// ScanContent returns the strings shown by the text operators of a page
// content stream, one operator per line. TJ arrays are joined without
// spacing.
func ScanContent(content []byte) []string {
	var lines []string
	for _, block := range textBlockRegex.FindAllSubmatch(content, -1) {
		for _, m := range showTextRegex.FindAllSubmatch(block[1], -1) {
			var line string
			if m[1] != nil {
				var sb strings.Builder
				for _, lit := range literalRegex.FindAllSubmatch(m[1], -1) {
					sb.WriteString(unescape(lit[1]))
				}
				line = sb.String()
			} else {
				line = unescape(m[2])
			}
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// unescape decodes the backslash escapes of a PDF literal string.
func unescape(lit []byte) string {
	var sb strings.Builder
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		if c != '\\' || i+1 >= len(lit) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch c = lit[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case '\r', '\n':
			// line continuation
		default:
			if c >= '0' && c <= '7' {
				j := i
				for j < len(lit) && j < i+3 && lit[j] >= '0' && lit[j] <= '7' {
					j++
				}
				v, _ := strconv.ParseUint(string(lit[i:j]), 8, 8)
				sb.WriteByte(byte(v))
				i = j - 1
				continue
			}
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
