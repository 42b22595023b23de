package compressfile

import (
	"compress/bzip2"
	"fmt"
	"os"

	"wordsearch/internal"
)

// Bz2FileParser decompresses bzip2 files. The member is named after the
// file with ".bz2" removed, so words.tar.bz2 expands to a tarball.
type Bz2FileParser struct{}

func (p *Bz2FileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open bz2 file: %w", err)
	}
	defer file.Close()

	name := strippedName(filePath, ".bz2", "content.txt")
	return expandAndWalk("bz2", func(dir string) (int, error) {
		if err := writeMember(bzip2.NewReader(file), memberPath(dir, name), 0o644); err != nil {
			return 0, fmt.Errorf("bzip2: %w", err)
		}
		return 1, nil
	})
}

func init() {
	internal.MustRegisterParser(internal.FileTypeBZ2, &Bz2FileParser{})
}
