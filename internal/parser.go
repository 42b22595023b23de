// Package internal holds the registry that maps a file type to the parser
// extracting its text. Format packages register themselves from init.
package internal

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"wordsearch/pkg/logger"
)

var (
	// ErrDuplicateParser is returned when a file type is registered twice.
	ErrDuplicateParser = errors.New("parser already registered")
	// ErrNoParser is returned when no parser, not even the fallback, exists.
	ErrNoParser = errors.New("no parser registered")
)

// FileParser extracts the text content of a file.
type FileParser interface {
	Parse(filePath string) ([]byte, error)
}

// ParserFunc adapts a function to FileParser.
type ParserFunc func(filePath string) ([]byte, error)

func (f ParserFunc) Parse(filePath string) ([]byte, error) { return f(filePath) }

var parsers = make(map[int]FileParser)

// RawFileParser returns the file bytes untouched.
type RawFileParser struct{}

func (p *RawFileParser) Parse(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	return data, nil
}

// RegisterParser binds parser to fileType. The first registration wins.
func RegisterParser(fileType int, parser FileParser) error {
	if _, exists := parsers[fileType]; exists {
		logger.Logger.Printf("file type %s already registered, ignoring", FileTypeName(fileType))
		return fmt.Errorf("file type %s: %w", FileTypeName(fileType), ErrDuplicateParser)
	}
	parsers[fileType] = parser
	return nil
}

// MustRegisterParser is RegisterParser for init functions.
func MustRegisterParser(fileType int, parser FileParser) {
	if err := RegisterParser(fileType, parser); err != nil {
		panic(err)
	}
}

// GetParser returns the parser for fileType, or the raw parser when the
// type has none.
func GetParser(fileType int) (FileParser, error) {
	if parser, exists := parsers[fileType]; exists {
		return parser, nil
	}
	if parser, exists := parsers[FileTypeUnknown]; exists {
		logger.DebugLogger.Printf("no parser for %s, reading raw bytes", FileTypeName(fileType))
		return parser, nil
	}
	return nil, fmt.Errorf("file type %s: %w", FileTypeName(fileType), ErrNoParser)
}

// RegisteredTypes lists the registered file types in ascending order.
func RegisteredTypes() []int {
	types := make([]int, 0, len(parsers))
	for t := range parsers {
		types = append(types, t)
	}
	sort.Ints(types)
	return types
}

// ParseFile detects the type of filePath and runs its parser.
func ParseFile(filePath string) ([]byte, error) {
	parser, err := GetParser(DetectFileType(filePath))
	if err != nil {
		return nil, err
	}
	return parser.Parse(filePath)
}

func init() {
	MustRegisterParser(FileTypeUnknown, &RawFileParser{})
}
