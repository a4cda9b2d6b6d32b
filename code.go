package hufftree

import (
	"fmt"
	"strconv"
)

// maxBitsPerCode is the longest code that a Code can hold.
const maxBitsPerCode = 64

// Code represents a sequence of bits: the path from the root of a Huffman
// tree to one of its leaves.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  Of the Size least
	// significant bits, the most significant one is the first bit, i.e.
	// the step taken from the root.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one more bit.  A bit of 0 means
// "descend left", and a bit of 1 means "descend right".
func (hc Code) Append(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | (bit & 1)}
}

// HasPrefix returns true iff prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
