package compressfile

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"

	"wordsearch/internal"
)

// GzFileParser decompresses gzip files and tar.gz bundles.
type GzFileParser struct{}

func (p *GzFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open gz file: %w", err)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("read gzip header: %w", err)
	}
	defer gz.Close()

	// The header name wins; otherwise strip the suffix and, for tarballs,
	// restore ".tar" so the member is dispatched to the tar parser.
	name := filepath.Base(gz.Header.Name)
	if gz.Header.Name == "" {
		switch internal.DetectFileType(filePath) {
		case internal.FileTypeTARGZ:
			name = strippedName(strippedName(filePath, ".tgz", ""), ".tar.gz", "archive") + ".tar"
		default:
			name = strippedName(filePath, ".gz", "content.txt")
		}
	}

	return expandAndWalk("gz", func(dir string) (int, error) {
		if err := writeMember(gz, memberPath(dir, name), 0o644); err != nil {
			return 0, err
		}
		return 1, nil
	})
}

func init() {
	internal.MustRegisterParser(internal.FileTypeGZ, &GzFileParser{})
	internal.MustRegisterParser(internal.FileTypeTARGZ, &GzFileParser{})
}
