package compressfile

import (
	"fmt"
	"os"

	"github.com/ulikunitz/xz"

	"wordsearch/internal"
)

// XzFileParser decompresses xz files, including tar.xz bundles.
type XzFileParser struct{}

func (p *XzFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open xz file: %w", err)
	}
	defer file.Close()

	xzReader, err := xz.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("read xz header: %w", err)
	}

	name := strippedName(filePath, ".xz", "content.txt")
	return expandAndWalk("xz", func(dir string) (int, error) {
		if err := writeMember(xzReader, memberPath(dir, name), 0o644); err != nil {
			return 0, err
		}
		return 1, nil
	})
}

func init() {
	internal.MustRegisterParser(internal.FileTypeXZ, &XzFileParser{})
}
