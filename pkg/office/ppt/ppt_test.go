package ppt

import (
	"bytes"
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func record(version uint8, recType uint16, body []byte, length int) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(version))
	binary.Write(&buf, binary.LittleEndian, recType)
	binary.Write(&buf, binary.LittleEndian, uint32(length))
	buf.Write(body)
	return buf.Bytes()
}

func utf16le(s string) []byte {
	var buf bytes.Buffer
	for _, u := range utf16.Encode([]rune(s)) {
		binary.Write(&buf, binary.LittleEndian, u)
	}
	return buf.Bytes()
}

func TestTextAtoms(t *testing.T) {
	chars := utf16le("Title\rSub ")
	latin := []byte("caf\xe9")
	other := []byte{1, 2}

	var stream []byte
	stream = append(stream, record(containerVersion, 0x03E8, nil, 8*3+len(chars)+len(latin)+len(other))...)
	stream = append(stream, record(0, recTextCharsAtom, chars, len(chars))...)
	stream = append(stream, record(0, 0x0FA9, other, len(other))...)
	stream = append(stream, record(0, recTextBytesAtom, latin, len(latin))...)
	// truncated trailing record
	stream = append(stream, record(0, recTextBytesAtom, []byte("lost"), 100)...)

	assert.Equal(t, []string{"Title", "Sub", "café"}, TextAtoms(stream))
}

func TestTextAtoms_Empty(t *testing.T) {
	assert.Empty(t, TextAtoms(nil))
	assert.Empty(t, TextAtoms([]byte{1, 2, 3}))
}

func TestReadHeader(t *testing.T) {
	h := readHeader(record(0xF, 0x0FF0, nil, 42))
	assert.Equal(t, RecordHeader{Version: 0xF, Instance: 0, Type: 0x0FF0, Length: 42}, h)
}
