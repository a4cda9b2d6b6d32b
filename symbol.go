package hufftree

// Symbol represents a symbol in the compressor's alphabet: the 256 byte
// values plus PseudoEOF.  Negative symbols are not valid.
type Symbol int32

const (
	// BitsPerWord is the width of one input unit.
	BitsPerWord = 8

	// BitsPerInt is the width of the magic tag.
	BitsPerInt = 32

	// AlphabetSize is the number of natural symbols, i.e. byte values.
	AlphabetSize = 1 << BitsPerWord

	// NumSymbols is the size of the full alphabet, including PseudoEOF.
	NumSymbols = AlphabetSize + 1

	// symbolBits is the width of a leaf's symbol in the tree header.  It
	// must be able to represent PseudoEOF.
	symbolBits = BitsPerWord + 1
)

// PseudoEOF is the sentinel symbol that terminates every payload.  No byte
// read from the input can ever produce it.
const PseudoEOF = Symbol(AlphabetSize)

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = PseudoEOF

// InvalidSymbol is stored in internal tree nodes, and is returned by some
// functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff the symbol is a byte value or PseudoEOF.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= MaxSymbol
}
