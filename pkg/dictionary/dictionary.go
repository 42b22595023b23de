// Package dictionary fills a word index from a file of any registered
// type: the file is reduced to text by its parser and the text is split
// into words.
package dictionary

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"wordsearch/internal"
	"wordsearch/pkg/logger"
)

// ErrEmptyPath is returned by Load when no dictionary path is given.
var ErrEmptyPath = errors.New("dictionary: empty path")

// WordAdder is the part of the index the loader needs.
type WordAdder interface {
	AddWord(word string) error
}

// SplitMode chooses how text is cut into words.
type SplitMode int

const (
	// SplitAuto uses SplitLines for bare word lists and SplitFields for
	// documents and archives.
	SplitAuto SplitMode = iota
	// SplitLines takes every non-empty line as one word.
	SplitLines
	// SplitFields takes every whitespace separated token as one word.
	SplitFields
)

func (m SplitMode) String() string {
	switch m {
	case SplitAuto:
		return "auto"
	case SplitLines:
		return "lines"
	case SplitFields:
		return "fields"
	default:
		return fmt.Sprintf("SplitMode(%d)", int(m))
	}
}

// ParseSplitMode accepts "auto", "lines" and "fields".
func ParseSplitMode(s string) (SplitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return SplitAuto, nil
	case "lines", "line":
		return SplitLines, nil
	case "fields", "words":
		return SplitFields, nil
	}
	return SplitAuto, fmt.Errorf("unknown split mode %q", s)
}

// Options tune how words are extracted.
type Options struct {
	Split SplitMode
	// MaxWordLength skips longer words. Zero means no limit.
	MaxWordLength int
}

// Stats reports what a load did.
type Stats struct {
	// Lines is the number of lines of text read.
	Lines int
	// Added counts words accepted by the index.
	Added int
	// Rejected counts words the index refused (characters outside its
	// alphabet).
	Rejected int
	// Skipped counts duplicates and words over the length limit.
	Skipped int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d lines, %d words added, %d rejected, %d skipped", s.Lines, s.Added, s.Rejected, s.Skipped)
}

// lineTypes hold one word per line. Archives are split by fields like
// documents since their members may be documents; for a word list the
// result is the same because a word never contains whitespace.
var lineTypes = []int{
	internal.FileTypeTXT,
	internal.FileTypeCSV,
	internal.FileTypeUnknown,
}

// ResolveSplit turns SplitAuto into the concrete mode for fileType.
func ResolveSplit(mode SplitMode, fileType int) SplitMode {
	if mode != SplitAuto {
		return mode
	}
	if lo.Contains(lineTypes, fileType) {
		return SplitLines
	}
	return SplitFields
}

// Load extracts the text of the file at path and feeds its words to ix.
// fileType FileTypeAuto detects the type from the file name.
func Load(ix WordAdder, path string, fileType int, opts Options) (Stats, error) {
	if path == "" {
		return Stats{}, ErrEmptyPath
	}
	if fileType == internal.FileTypeAuto {
		fileType = internal.DetectFileType(path)
	}

	parser, err := internal.GetParser(fileType)
	if err != nil {
		return Stats{}, err
	}
	text, err := parser.Parse(path)
	if err != nil {
		return Stats{}, fmt.Errorf("load dictionary %s: %w", path, err)
	}

	opts.Split = ResolveSplit(opts.Split, fileType)
	logger.Logger.Printf("dictionary %s: type %s, %d bytes of text, split by %v",
		path, internal.FileTypeName(fileType), len(text), opts.Split)

	stats := Feed(ix, text, opts)
	logger.Logger.Printf("dictionary %s: %v", path, stats)
	return stats, nil
}

// Feed splits text into words and adds them to ix in order of first
// appearance. SplitAuto behaves as SplitLines.
func Feed(ix WordAdder, text []byte, opts Options) Stats {
	var stats Stats
	lines := bytes.Split(text, []byte("\n"))
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	stats.Lines = len(lines)

	var words []string
	for _, line := range lines {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if opts.Split == SplitFields {
			words = append(words, strings.Fields(string(line))...)
			continue
		}
		if len(line) > 0 {
			words = append(words, string(line))
		}
	}

	unique := lo.Uniq(words)
	kept := lo.Filter(unique, func(w string, _ int) bool {
		return opts.MaxWordLength <= 0 || len(w) <= opts.MaxWordLength
	})
	stats.Skipped = len(words) - len(kept)

	for _, w := range kept {
		if err := ix.AddWord(w); err != nil {
			stats.Rejected++
			continue
		}
		stats.Added++
	}
	return stats
}
