package compressfile

import (
	"archive/zip"
	"fmt"

	"wordsearch/internal"
	"wordsearch/pkg/logger"
)

// ZipFileParser expands zip, jar and war archives.
type ZipFileParser struct{}

func (p *ZipFileParser) Parse(filePath string) ([]byte, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open zip file: %w", err)
	}
	defer r.Close()

	return expandAndWalk("zip", func(dir string) (int, error) {
		n := 0
		for _, f := range r.File {
			if f.FileInfo().IsDir() {
				continue
			}
			target := memberPath(dir, f.Name)
			logger.DebugLogger.Printf("zip member %s -> %s", f.Name, target)

			rc, err := f.Open()
			if err != nil {
				return n, fmt.Errorf("open zip member %s: %w", f.Name, err)
			}
			err = writeMember(rc, target, f.Mode())
			rc.Close()
			if err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	})
}

func init() {
	internal.MustRegisterParser(internal.FileTypeZIP, &ZipFileParser{})
	internal.MustRegisterParser(internal.FileTypeJAR, &ZipFileParser{})
}
