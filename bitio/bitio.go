// Package bitio adapts github.com/icza/bitio's bit-granular reader/writer
// (the same dependency the teacher, github.com/mewkiz/flac, uses for its
// own bit-level parsing) to the narrow arithcode.BitRead/arithcode.BitWrite
// interfaces.
//
// The arithmetic coder core treats bit I/O as an external collaborator (see
// SPEC_FULL.md §6): it never buffers, frames, or owns a byte sink/source
// itself. This package is the one concrete implementation callers are
// expected to reach for when they have a plain io.Writer/io.Reader.
package bitio

import (
	"io"

	"github.com/icza/bitio"
	"github.com/mewkiz/pkg/errutil"
)

// Writer adapts a bitio.Writer to arithcode.BitWrite.
type Writer struct {
	bw *bitio.Writer
}

// NewWriter returns a Writer that packs bits MSB-first into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// WriteBit writes a single bit, satisfying arithcode.BitWrite.
func (w *Writer) WriteBit(bit bool) error {
	if err := w.bw.WriteBool(bit); err != nil {
		return errutil.Err(err)
	}
	return nil
}

// Close flushes any partial final byte, padding it with zero bits, and
// satisfies the byte-alignment expectation of spec.md §6.
func (w *Writer) Close() error {
	if err := w.bw.Close(); err != nil {
		return errutil.Err(err)
	}
	return nil
}

// Reader adapts a bitio.Reader to arithcode.BitRead.
type Reader struct {
	br *bitio.Reader
}

// NewReader returns a Reader that unpacks bits MSB-first from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// ReadBit reads a single bit, satisfying arithcode.BitRead. End of stream is
// surfaced as io.EOF, which the decoder translates into "no further bit"
// rather than a hard failure, per spec.md §6.
func (r *Reader) ReadBit() (bool, error) {
	bit, err := r.br.ReadBool()
	if err != nil {
		if err == io.EOF {
			return false, io.EOF
		}
		return false, errutil.Err(err)
	}
	return bit, nil
}
