package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/hufftree/bitstream"
)

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies reads r to exhaustion, one byte at a time, and tallies
// each byte value.  The count for PseudoEOF is always set to 1.
//
// The input is fully consumed; the caller must Reset it before reading it
// again.
//
func CountFrequencies(r *bitstream.Reader) (FrequencyTable, error) {
	var freqs FrequencyTable
	for {
		unit, err := r.ReadBits(BitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return FrequencyTable{}, fmt.Errorf("hufftree: failed to count input: %w", err)
		}
		freqs[unit]++
	}
	freqs[PseudoEOF] = 1
	return freqs, nil
}

// NumPresent returns the number of symbols with a non-zero count.
func (freqs *FrequencyTable) NumPresent() int {
	var n int
	for _, count := range freqs {
		if count != 0 {
			n++
		}
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the non-zero counts to
// the given writer.
func (freqs *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if count := freqs[symbol]; count != 0 {
			fmt.Fprintf(&buf, "\tCount(%d) = %d\n", symbol, count)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
