package hufftree

import (
	"fmt"
	"io"

	"github.com/chronos-tachyon/hufftree/bitstream"
)

// EncodePayload reads r to exhaustion, one byte at a time, and writes the
// Code of each byte to w in input order.  It then writes the Code for
// PseudoEOF exactly once.
//
// The caller is responsible for rewinding r beforehand, and for closing w
// afterward.
//
func EncodePayload(codes *CodeTable, r *bitstream.Reader, w *bitstream.Writer) error {
	return encodePayload(codes, r, w, nil)
}

func encodePayload(codes *CodeTable, r *bitstream.Reader, w *bitstream.Writer, trace func(Symbol, Code)) error {
	for {
		unit, err := r.ReadBits(BitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("hufftree: failed to read input: %w", err)
		}
		if err := encodeSymbol(codes, Symbol(unit), w, trace); err != nil {
			return err
		}
	}
	return encodeSymbol(codes, PseudoEOF, w, trace)
}

func encodeSymbol(codes *CodeTable, symbol Symbol, w *bitstream.Writer, trace func(Symbol, Code)) error {
	hc, ok := codes.Encode(symbol)
	if !ok {
		return &InvalidTreeError{Reason: fmt.Sprintf("no code for symbol %d", symbol)}
	}
	if trace != nil {
		trace(symbol, hc)
	}
	return writeCode(w, hc)
}

// writeCode writes hc root-first, splitting it into fields no wider than
// bitstream.MaxWidth.  An empty Code writes nothing.
func writeCode(w *bitstream.Writer, hc Code) error {
	size := hc.Size
	for size > bitstream.MaxWidth {
		size -= bitstream.MaxWidth
		if err := w.WriteBits(bitstream.MaxWidth, uint32(hc.Bits>>size)); err != nil {
			return err
		}
	}
	if size == 0 {
		return nil
	}
	return w.WriteBits(size, uint32(hc.Bits))
}
