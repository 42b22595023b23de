// Package ooxml reads the text of zip based office packages: Office Open
// XML (docx, xlsx, pptx, vsdx) and OpenDocument (odt).
package ooxml

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"

	"wordsearch/pkg/logger"
)

// Package is an opened office package.
type Package struct {
	reader *zip.ReadCloser
	name   string
}

// Open opens the package at filePath.
func Open(filePath string) (*Package, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open package %s: %w", filePath, err)
	}
	return &Package{reader: r, name: filePath}, nil
}

func (p *Package) Close() error {
	return p.reader.Close()
}

// Find returns the part called name, or nil.
func (p *Package) Find(name string) *zip.File {
	for _, f := range p.reader.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

var partNumber = regexp.MustCompile(`(\d+)\.xml$`)

func numberOf(name string) int {
	m := partNumber.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// Parts returns the parts in dir whose base name matches pattern, ordered
// by the number embedded in the name (slide2 before slide10).
func (p *Package) Parts(dir string, pattern *regexp.Regexp) []*zip.File {
	var parts []*zip.File
	for _, f := range p.reader.File {
		if path.Dir(f.Name) != dir {
			continue
		}
		if !pattern.MatchString(path.Base(f.Name)) {
			logger.DebugLogger.Printf("%s: skipping part %s", p.name, f.Name)
			continue
		}
		parts = append(parts, f)
	}
	sort.SliceStable(parts, func(i, j int) bool {
		return numberOf(parts[i].Name) < numberOf(parts[j].Name)
	})
	return parts
}

// Read returns the content of part f.
func Read(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open part %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read part %s: %w", f.Name, err)
	}
	return data, nil
}

// Lines runs Collect over part f.
func Lines(f *zip.File, rules Rules) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open part %s: %w", f.Name, err)
	}
	defer rc.Close()

	lines, err := Collect(rc, rules)
	if err != nil {
		return nil, fmt.Errorf("part %s: %w", f.Name, err)
	}
	logger.DebugLogger.Printf("part %s: %d lines", f.Name, len(lines))
	return lines, nil
}

// PartsText collects the lines of every part, logging and skipping parts
// that fail to parse.
func PartsText(parts []*zip.File, rules Rules) []string {
	var out []string
	for _, f := range parts {
		lines, err := Lines(f, rules)
		if err != nil {
			logger.Logger.Printf("skipping %v", err)
			continue
		}
		out = append(out, lines...)
	}
	return out
}
