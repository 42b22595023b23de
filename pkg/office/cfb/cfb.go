// Package cfb reads named streams out of OLE compound files, the container
// of legacy .doc, .xls and .ppt documents.
package cfb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf16"

	"github.com/richardlehane/mscfb"

	"wordsearch/pkg/logger"
)

// ErrStreamNotFound is returned when a required stream is missing.
var ErrStreamNotFound = errors.New("stream not found")

// ReadStreams returns the content of the streams called names. Missing
// streams are absent from the map.
func ReadStreams(filePath string, names ...string) (map[string][]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open compound file: %w", err)
	}
	defer file.Close()

	doc, err := mscfb.New(file)
	if err != nil {
		return nil, fmt.Errorf("read compound file %s: %w", filePath, err)
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	streams := make(map[string][]byte)
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		logger.DebugLogger.Printf("cfb %s: entry %q size %d", filePath, entry.Name, entry.Size)
		if !wanted[entry.Name] {
			continue
		}
		if _, seen := streams[entry.Name]; seen {
			continue
		}
		data, err := io.ReadAll(entry)
		if err != nil {
			return nil, fmt.Errorf("read stream %q: %w", entry.Name, err)
		}
		streams[entry.Name] = data
	}
	return streams, nil
}

// Stream is ReadStreams for a single required stream.
func Stream(filePath, name string) ([]byte, error) {
	streams, err := ReadStreams(filePath, name)
	if err != nil {
		return nil, err
	}
	data, ok := streams[name]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", filePath, name, ErrStreamNotFound)
	}
	return data, nil
}

// TextRuns returns the runs of at least minLen printable UTF-16LE
// characters in data. It recovers text from streams whose structure could
// not be decoded.
func TextRuns(data []byte, minLen int) []string {
	var runs []string
	var cur []rune
	end := func() {
		if len(cur) >= minLen {
			runs = append(runs, string(cur))
		}
		cur = cur[:0]
	}
	for i := 0; i+1 < len(data); i += 2 {
		r := rune(binary.LittleEndian.Uint16(data[i:]))
		if unicode.IsPrint(r) && !utf16.IsSurrogate(r) {
			cur = append(cur, r)
			continue
		}
		end()
	}
	end()
	return runs
}
