package compressfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nwaples/rardecode"

	"wordsearch/internal"
)

// RarFileParser expands unencrypted RAR archives.
type RarFileParser struct{}

func (p *RarFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open rar file: %w", err)
	}
	defer file.Close()

	reader, err := rardecode.NewReader(file, "")
	if err != nil {
		return nil, fmt.Errorf("read rar header: %w", err)
	}

	return expandAndWalk("rar", func(dir string) (int, error) {
		n := 0
		for {
			hdr, err := reader.Next()
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			if err != nil {
				return n, fmt.Errorf("rar: %w", err)
			}
			if hdr.IsDir {
				continue
			}
			if err := writeMember(reader, memberPath(dir, hdr.Name), 0o644); err != nil {
				return n, err
			}
			n++
		}
	})
}

func init() {
	internal.MustRegisterParser(internal.FileTypeRAR, &RarFileParser{})
}
