// Package bitstream provides the bit-level input and output streams consumed
// by the hufftree compressor.  Bits are read and written most significant
// bit first, and fields are between 1 and 32 bits wide.
//
// The heavy lifting is done by <https://github.com/icza/bitio>; this package
// adds rewinding, bit accounting, and ownership of the underlying stream.
//
package bitstream

import (
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// MaxWidth is the widest field that ReadBits and WriteBits will accept.
const MaxWidth = 32

// ErrNotSeekable is returned by Reader.Reset when the underlying io.Reader
// cannot be rewound.
var ErrNotSeekable = errors.New("bitstream: input does not implement io.Seeker")

// Reader reads fixed-width bit fields from an io.Reader.
type Reader struct {
	src      io.Reader
	br       *bitio.Reader
	bitsRead int64
}

// NewReader returns a Reader that draws bits from src.  If src implements
// io.Seeker, the Reader can be rewound with Reset.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, br: bitio.NewReader(src)}
}

// ReadBits reads the next width bits and returns them as the low bits of the
// result, first bit most significant.  At end of input it returns io.EOF,
// even if some (but not all) of the requested bits were available.
func (r *Reader) ReadBits(width uint8) (uint32, error) {
	assert.Assertf(width >= 1 && width <= MaxWidth, "width %d not in [1, %d]", width, MaxWidth)

	u, err := r.br.ReadBits(width)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, err
	}
	r.bitsRead += int64(width)
	return uint32(u), nil
}

// Reset rewinds the Reader to the start of its input.  Any partially
// consumed byte is discarded.
func (r *Reader) Reset() error {
	seeker, ok := r.src.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("bitstream: failed to rewind input: %w", err)
	}
	r.br = bitio.NewReader(r.src)
	r.bitsRead = 0
	return nil
}

// BitsRead returns the number of bits read since construction or the last
// Reset.
func (r *Reader) BitsRead() int64 {
	return r.bitsRead
}

// Writer writes fixed-width bit fields to an io.Writer.  It must be closed
// to flush the final partial byte.
type Writer struct {
	dst         io.Writer
	bw          *bitio.Writer
	bitsWritten int64
	closed      bool
}

// NewWriter returns a Writer that sends bits to dst.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst, bw: bitio.NewWriter(dst)}
}

// WriteBits writes the low width bits of value, most significant bit first.
// Higher bits of value are ignored.
func (w *Writer) WriteBits(width uint8, value uint32) error {
	assert.Assertf(width >= 1 && width <= MaxWidth, "width %d not in [1, %d]", width, MaxWidth)
	assert.Assertf(!w.closed, "WriteBits called on closed Writer")

	mask := uint64(1)<<width - 1
	if err := w.bw.WriteBits(uint64(value)&mask, width); err != nil {
		return fmt.Errorf("bitstream: write failed: %w", err)
	}
	w.bitsWritten += int64(width)
	return nil
}

// BitsWritten returns the number of bits written so far, not counting the
// padding added by Close.
func (w *Writer) BitsWritten() int64 {
	return w.bitsWritten
}

// Close pads the final partial byte with zero bits, flushes all buffered
// output, and closes the underlying io.Writer if it is an io.Closer.
// Calling Close more than once is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.bw.Close(); err != nil {
		return fmt.Errorf("bitstream: flush failed: %w", err)
	}
	if c, ok := w.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

var _ io.Closer = (*Writer)(nil)
