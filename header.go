package hufftree

import (
	"fmt"
	"io"

	"github.com/chronos-tachyon/hufftree/bitstream"
)

const (
	// MagicTreeHeader is the 32-bit tag that begins every compressed
	// stream, identifying the tree-header format.
	MagicTreeHeader = 0xface8200 | 1

	leafMarker     = 1
	internalMarker = 0

	// maxTreeDepth bounds the nesting of a header: a tree with NumSymbols
	// leaves is never deeper than NumSymbols-1.
	maxTreeDepth = NumSymbols - 1
)

// WriteHeader serializes the tree rooted at root in preorder.  A leaf is
// written as a 1 bit followed by its 9-bit Symbol; an internal node is
// written as a 0 bit followed by its left and then its right subtree.
func WriteHeader(w *bitstream.Writer, root *Node) error {
	if root.IsLeaf() {
		if err := w.WriteBits(1, leafMarker); err != nil {
			return err
		}
		return w.WriteBits(symbolBits, uint32(root.Symbol))
	}
	if root.Left == nil || root.Right == nil {
		return &InvalidTreeError{Reason: "internal node has only one child"}
	}
	if err := w.WriteBits(1, internalMarker); err != nil {
		return err
	}
	if err := WriteHeader(w, root.Left); err != nil {
		return err
	}
	return WriteHeader(w, root.Right)
}

// ReadHeader deserializes a tree written by WriteHeader.  The nodes of the
// returned tree carry no weights.
//
// Returns a CorruptHeaderError if the input ends before the tree is
// complete, or if the tree is not one that WriteHeader could have produced
// for this alphabet: a Symbol out of range, a Symbol that appears twice, or
// no PseudoEOF leaf at all.
//
func ReadHeader(r *bitstream.Reader) (*Node, error) {
	hr := headerReader{r: r}
	root, err := hr.readNode(0)
	if err != nil {
		return nil, err
	}
	if !hr.seen[PseudoEOF] {
		return nil, &CorruptHeaderError{Reason: "tree has no PseudoEOF leaf"}
	}
	return root, nil
}

type headerReader struct {
	r    *bitstream.Reader
	seen [NumSymbols]bool
}

func (hr *headerReader) readNode(depth int) (*Node, error) {
	if depth > maxTreeDepth {
		return nil, &CorruptHeaderError{Reason: fmt.Sprintf("tree deeper than %d levels", maxTreeDepth)}
	}

	marker, err := hr.r.ReadBits(1)
	if err != nil {
		return nil, headerReadError("node marker", err)
	}

	if marker == leafMarker {
		value, err := hr.r.ReadBits(symbolBits)
		if err != nil {
			return nil, headerReadError("leaf symbol", err)
		}
		symbol := Symbol(value)
		if !symbol.IsValid() {
			return nil, &CorruptHeaderError{Reason: fmt.Sprintf("leaf symbol %d out of range", value)}
		}
		if hr.seen[symbol] {
			return nil, &CorruptHeaderError{Reason: fmt.Sprintf("leaf symbol %d appears more than once", value)}
		}
		hr.seen[symbol] = true
		return NewLeaf(symbol, 0), nil
	}

	left, err := hr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := hr.readNode(depth + 1)
	if err != nil {
		return nil, err
	}
	return &Node{Symbol: InvalidSymbol, Left: left, Right: right}, nil
}

func headerReadError(what string, err error) error {
	if err == io.EOF {
		return &CorruptHeaderError{Reason: "input ended while reading " + what, Err: io.ErrUnexpectedEOF}
	}
	return &CorruptHeaderError{Reason: "failed to read " + what, Err: err}
}
