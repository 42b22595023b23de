package compressfile

import (
	"fmt"

	"github.com/gen2brain/go-unarr"

	"wordsearch/internal"
)

// SevenZFileParser expands 7z archives through libunarr.
type SevenZFileParser struct{}

func (p *SevenZFileParser) Parse(filePath string) ([]byte, error) {
	archive, err := unarr.NewArchive(filePath)
	if err != nil {
		return nil, fmt.Errorf("open 7z file: %w", err)
	}
	defer archive.Close()

	return expandAndWalk("7z", func(dir string) (int, error) {
		files, err := archive.Extract(dir)
		if err != nil {
			return len(files), fmt.Errorf("extract 7z: %w", err)
		}
		return len(files), nil
	})
}

func init() {
	internal.MustRegisterParser(internal.FileType7Z, &SevenZFileParser{})
}
