// Package fib reads the parts of the Word 97 File Information Block needed
// to locate the document text.
package fib

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	WordIdent = 0xA5EC

	offsetIdent = 0x0000
	offsetNFib  = 0x0002
	offsetFlags = 0x000A
	offsetFcClx = 0x01A2
	offsetLcb   = 0x01A6

	flagEncrypted   = 0x0100
	flagWhichTblStm = 0x0200
	minFibLength    = offsetLcb + 4
)

var (
	ErrNotWord   = errors.New("not a Word binary document")
	ErrEncrypted = errors.New("document is encrypted")
)

// Fib is the subset of the FIB used for text extraction.
type Fib struct {
	NFib  uint16
	Flags uint16
	// FcClx and LcbClx locate the piece table in the table stream.
	FcClx  uint32
	LcbClx uint32
}

// Parse reads the FIB at the start of the WordDocument stream.
func Parse(wordDocument []byte) (*Fib, error) {
	if len(wordDocument) < minFibLength {
		return nil, fmt.Errorf("fib: stream of %d bytes: %w", len(wordDocument), ErrNotWord)
	}
	le := binary.LittleEndian
	if le.Uint16(wordDocument[offsetIdent:]) != WordIdent {
		return nil, ErrNotWord
	}
	f := &Fib{
		NFib:   le.Uint16(wordDocument[offsetNFib:]),
		Flags:  le.Uint16(wordDocument[offsetFlags:]),
		FcClx:  le.Uint32(wordDocument[offsetFcClx:]),
		LcbClx: le.Uint32(wordDocument[offsetLcb:]),
	}
	if f.Flags&flagEncrypted != 0 {
		return nil, ErrEncrypted
	}
	return f, nil
}

// TableStream names the stream holding the piece table.
func (f *Fib) TableStream() string {
	if f.Flags&flagWhichTblStm != 0 {
		return "1Table"
	}
	return "0Table"
}

// Clx returns the Clx bytes out of the table stream.
func (f *Fib) Clx(table []byte) ([]byte, error) {
	end := uint64(f.FcClx) + uint64(f.LcbClx)
	if f.LcbClx == 0 || end > uint64(len(table)) {
		return nil, fmt.Errorf("fib: clx [%d,+%d) outside %s of %d bytes", f.FcClx, f.LcbClx, f.TableStream(), len(table))
	}
	return table[f.FcClx:end], nil
}
