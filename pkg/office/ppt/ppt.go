package ppt

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"wordsearch/pkg/logger"
	"wordsearch/pkg/office/cfb"
)

const (
	documentStream = "PowerPoint Document"

	recordHeaderSize = 8
	containerVersion = 0xF

	recTextCharsAtom = 0x0FA0
	recTextBytesAtom = 0x0FA8
)

// OfficePptParser extracts the text atoms of PowerPoint 97-2003
// presentations.
type OfficePptParser struct{}

func (p *OfficePptParser) Parse(filePath string) ([]byte, error) {
	stream, err := cfb.Stream(filePath, documentStream)
	if err != nil {
		return nil, err
	}
	texts := TextAtoms(stream)
	logger.Logger.Printf("ppt %s: %d text atoms in %d bytes", filePath, len(texts), len(stream))
	return []byte(strings.Join(texts, "\n")), nil
}

// RecordHeader is the 8 byte header in front of every record.
type RecordHeader struct {
	Version  uint8
	Instance uint16
	Type     uint16
	Length   uint32
}

func readHeader(b []byte) RecordHeader {
	verInst := binary.LittleEndian.Uint16(b)
	return RecordHeader{
		Version:  uint8(verInst & 0x000F),
		Instance: verInst >> 4,
		Type:     binary.LittleEndian.Uint16(b[2:]),
		Length:   binary.LittleEndian.Uint32(b[4:]),
	}
}

// TextAtoms walks the record stream in document order and returns the
// content of every text atom. Containers are entered, other records are
// skipped. A truncated record ends the walk.
func TextAtoms(stream []byte) []string {
	var texts []string
	off := 0
	for off+recordHeaderSize <= len(stream) {
		h := readHeader(stream[off:])
		off += recordHeaderSize
		if h.Version == containerVersion {
			continue
		}
		end := off + int(h.Length)
		if end > len(stream) || end < off {
			logger.DebugLogger.Printf("ppt: record 0x%04x at %d overruns the stream", h.Type, off-recordHeaderSize)
			break
		}
		body := stream[off:end]
		off = end

		var text string
		switch h.Type {
		case recTextCharsAtom:
			units := make([]uint16, len(body)/2)
			for i := range units {
				units[i] = binary.LittleEndian.Uint16(body[2*i:])
			}
			text = string(utf16.Decode(units))
		case recTextBytesAtom:
			decoded, err := charmap.Windows1252.NewDecoder().Bytes(body)
			if err != nil {
				continue
			}
			text = string(decoded)
		default:
			continue
		}
		// paragraphs inside an atom are separated by carriage returns
		for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '\r' || r == '\v' || r == '\n' }) {
			if line = strings.TrimSpace(line); line != "" {
				texts = append(texts, line)
			}
		}
	}
	return texts
}
