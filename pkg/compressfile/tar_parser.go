package compressfile

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"

	"wordsearch/internal"
	"wordsearch/pkg/logger"
)

// TarFileParser expands tar archives. Links and devices are skipped.
type TarFileParser struct{}

func (p *TarFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open tar file: %w", err)
	}
	defer file.Close()

	return expandAndWalk("tar", func(dir string) (int, error) {
		return extractTar(tar.NewReader(file), dir)
	})
}

func extractTar(tr *tar.Reader, dir string) (int, error) {
	n := 0
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("tar: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			logger.DebugLogger.Printf("tar: skipping %s (type %c)", header.Name, header.Typeflag)
			continue
		}
		if err := writeMember(tr, memberPath(dir, header.Name), os.FileMode(header.Mode)); err != nil {
			return n, err
		}
		n++
	}
}

func init() {
	internal.MustRegisterParser(internal.FileTypeTAR, &TarFileParser{})
}
