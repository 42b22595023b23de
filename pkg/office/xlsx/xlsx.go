package xlsx

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"wordsearch/pkg/logger"
	"wordsearch/pkg/office/ooxml"
)

// OfficeXlsxParser extracts cell text, one row per line with cells
// separated by tabs.
type OfficeXlsxParser struct{}

var sheetPart = regexp.MustCompile(`^sheet\d+\.xml$`)

func (p *OfficeXlsxParser) Parse(filePath string) ([]byte, error) {
	pkg, err := ooxml.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	var shared []string
	if f := pkg.Find("xl/sharedStrings.xml"); f != nil {
		data, err := ooxml.Read(f)
		if err != nil {
			return nil, fmt.Errorf("xlsx %s: %w", filePath, err)
		}
		if shared, err = parseSharedStrings(data); err != nil {
			// cells still carry numbers and inline strings
			logger.Logger.Printf("xlsx %s: shared strings: %v", filePath, err)
		}
	}

	sheets := pkg.Parts("xl/worksheets", sheetPart)
	var rows []string
	for _, f := range sheets {
		data, err := ooxml.Read(f)
		if err != nil {
			logger.Logger.Printf("xlsx %s: %v", filePath, err)
			continue
		}
		sheetRows, err := parseSheet(data, shared)
		if err != nil {
			logger.Logger.Printf("xlsx %s: sheet %s: %v", filePath, f.Name, err)
			continue
		}
		rows = append(rows, sheetRows...)
	}
	logger.Logger.Printf("xlsx %s: %d sheets, %d shared strings, %d rows", filePath, len(sheets), len(shared), len(rows))

	return []byte(strings.Join(rows, "\n")), nil
}

type richText struct {
	T    string `xml:"t"`
	Runs []struct {
		T string `xml:"t"`
	} `xml:"r"`
}

func (rt richText) String() string {
	if len(rt.Runs) == 0 {
		return rt.T
	}
	var sb strings.Builder
	for _, r := range rt.Runs {
		sb.WriteString(r.T)
	}
	return sb.String()
}

type sst struct {
	Items []richText `xml:"si"`
}

func parseSharedStrings(data []byte) ([]string, error) {
	var table sst
	if err := xml.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	out := make([]string, len(table.Items))
	for i, item := range table.Items {
		out[i] = item.String()
	}
	return out, nil
}

type worksheet struct {
	Rows []struct {
		Cells []cell `xml:"c"`
	} `xml:"sheetData>row"`
}

type cell struct {
	Type   string   `xml:"t,attr"`
	Value  string   `xml:"v"`
	Inline richText `xml:"is"`
}

func (c cell) text(shared []string) string {
	switch c.Type {
	case "s":
		i, err := strconv.Atoi(c.Value)
		if err != nil || i < 0 || i >= len(shared) {
			return ""
		}
		return shared[i]
	case "inlineStr":
		return c.Inline.String()
	default:
		return c.Value
	}
}

func parseSheet(data []byte, shared []string) ([]string, error) {
	var ws worksheet
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, err
	}

	var rows []string
	for _, row := range ws.Rows {
		var cells []string
		for _, c := range row.Cells {
			if v := strings.TrimSpace(c.text(shared)); v != "" {
				cells = append(cells, v)
			}
		}
		if len(cells) > 0 {
			rows = append(rows, strings.Join(cells, "\t"))
		}
	}
	return rows, nil
}
