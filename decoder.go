package hufftree

import (
	"fmt"
	"io"

	"github.com/chronos-tachyon/hufftree/bitstream"
)

// DecodePayload walks the tree rooted at root one bit at a time, taking the
// left child on a 0 bit and the right child on a 1 bit.  On reaching a leaf
// it writes the leaf's byte to w and starts over from the root, until it
// reaches the PseudoEOF leaf.  Returns the number of bytes written.
//
// If root is itself the PseudoEOF leaf, the payload is empty and no bits
// are read.
//
// Returns a TruncatedStreamError if r runs out before PseudoEOF is reached,
// or an InvalidTreeError if the walk reaches a missing child.
//
func DecodePayload(root *Node, r *bitstream.Reader, w *bitstream.Writer) (int64, error) {
	return decodePayload(root, r, w, nil)
}

func decodePayload(root *Node, r *bitstream.Reader, w *bitstream.Writer, trace func(Symbol)) (int64, error) {
	if root.IsLeaf() {
		if root.Symbol == PseudoEOF {
			return 0, nil
		}
		return 0, &InvalidTreeError{Reason: fmt.Sprintf("root is a leaf for symbol %d, not PseudoEOF", root.Symbol)}
	}

	var decoded int64
	current := root
	var depth int
	for {
		bit, err := r.ReadBits(1)
		if err == io.EOF {
			return decoded, &TruncatedStreamError{Decoded: decoded, Err: io.ErrUnexpectedEOF}
		}
		if err != nil {
			return decoded, fmt.Errorf("hufftree: failed to read payload: %w", err)
		}

		if bit == 0 {
			current = current.Left
		} else {
			current = current.Right
		}
		depth++
		if current == nil {
			return decoded, &InvalidTreeError{Reason: fmt.Sprintf("missing child at depth %d after %d symbols", depth, decoded)}
		}
		if !current.IsLeaf() {
			continue
		}

		if trace != nil {
			trace(current.Symbol)
		}
		if current.Symbol == PseudoEOF {
			return decoded, nil
		}
		if err := w.WriteBits(BitsPerWord, uint32(current.Symbol)); err != nil {
			return decoded, err
		}
		decoded++
		current = root
		depth = 0
	}
}
