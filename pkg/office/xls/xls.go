package xls

import (
	"fmt"
	"strings"

	exls "github.com/extrame/xls"

	"wordsearch/pkg/logger"
)

// OfficeXlsParser extracts cell text from BIFF8 workbooks, one row per
// line with cells separated by tabs.
type OfficeXlsParser struct{}

func (p *OfficeXlsParser) Parse(filePath string) ([]byte, error) {
	book, err := exls.Open(filePath, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls %s: %w", filePath, err)
	}

	var rows []string
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}
		before := len(rows)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				continue
			}
			var cells []string
			for c := 0; c < row.LastCol(); c++ {
				if v := strings.TrimSpace(row.Col(c)); v != "" {
					cells = append(cells, v)
				}
			}
			if len(cells) > 0 {
				rows = append(rows, strings.Join(cells, "\t"))
			}
		}
		logger.DebugLogger.Printf("xls %s: sheet %q has %d rows", filePath, sheet.Name, len(rows)-before)
	}
	logger.Logger.Printf("xls %s: %d sheets, %d rows", filePath, book.NumSheets(), len(rows))

	return []byte(strings.Join(rows, "\n")), nil
}
