// Package clx decodes the piece table of a Word binary document and
// rebuilds the document text from it.
package clx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"wordsearch/pkg/logger"
)

const (
	clxtPrc  = 0x01
	clxtPcdt = 0x02

	pcdSize         = 8
	fcMask          = 0x3FFFFFFF
	fcCompressedBit = 0x40000000
)

var ErrMalformed = errors.New("malformed piece table")

// Piece is one run of document text.
type Piece struct {
	CPStart, CPEnd uint32
	// Offset is the byte offset of the run in the WordDocument stream.
	Offset     uint32
	Compressed bool
}

// Pieces decodes the PlcPcd inside clx, skipping any leading Prc entries.
func Pieces(clx []byte) ([]Piece, error) {
	le := binary.LittleEndian
	i := 0
	for i < len(clx) && clx[i] == clxtPrc {
		if i+3 > len(clx) {
			return nil, ErrMalformed
		}
		i += 3 + int(le.Uint16(clx[i+1:]))
	}
	if i+5 > len(clx) || clx[i] != clxtPcdt {
		return nil, fmt.Errorf("pcdt not found at %d: %w", i, ErrMalformed)
	}
	lcb := int(le.Uint32(clx[i+1:]))
	plc := clx[i+5:]
	if lcb > len(plc) || (lcb-4)%(4+pcdSize) != 0 {
		return nil, fmt.Errorf("plcpcd of %d bytes: %w", lcb, ErrMalformed)
	}
	plc = plc[:lcb]

	n := (lcb - 4) / (4 + pcdSize)
	pcds := plc[(n+1)*4:]
	pieces := make([]Piece, 0, n)
	for k := 0; k < n; k++ {
		fc := le.Uint32(pcds[k*pcdSize+2:])
		p := Piece{
			CPStart:    le.Uint32(plc[k*4:]),
			CPEnd:      le.Uint32(plc[(k+1)*4:]),
			Compressed: fc&fcCompressedBit != 0,
		}
		p.Offset = fc & fcMask
		if p.Compressed {
			p.Offset /= 2
		}
		if p.CPEnd < p.CPStart {
			return nil, fmt.Errorf("piece %d ends before it starts: %w", k, ErrMalformed)
		}
		pieces = append(pieces, p)
	}
	return pieces, nil
}

// Text concatenates the pieces read out of wordDocument. Pieces pointing
// outside the stream are logged and skipped.
func Text(wordDocument []byte, pieces []Piece) string {
	var runes []rune
	for _, p := range pieces {
		count := int(p.CPEnd - p.CPStart)
		size := count
		if !p.Compressed {
			size *= 2
		}
		start := int(p.Offset)
		if start+size > len(wordDocument) {
			logger.Logger.Printf("piece at %d (%d bytes) outside stream of %d bytes", start, size, len(wordDocument))
			continue
		}
		raw := wordDocument[start : start+size]

		if p.Compressed {
			for _, b := range raw {
				runes = append(runes, charmap.Windows1252.DecodeByte(b))
			}
			continue
		}
		units := make([]uint16, count)
		for k := range units {
			units[k] = binary.LittleEndian.Uint16(raw[2*k:])
		}
		runes = append(runes, utf16.Decode(units)...)
	}
	return string(runes)
}
