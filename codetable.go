package hufftree

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol present in a Huffman tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	maxSize byte
}

// BuildCodeTable walks the tree rooted at root in preorder and records the
// root-to-leaf path of every leaf as that leaf's Code.
//
// A tree consisting of a single leaf assigns that leaf the empty Code.
// Returns ErrCodeTooLong if any leaf is more than 64 levels deep, or an
// InvalidTreeError if an internal node is missing a child.
//
func BuildCodeTable(root *Node) (*CodeTable, error) {
	ct := new(CodeTable)
	if err := ct.fill(root, Code{}); err != nil {
		return nil, err
	}
	return ct, nil
}

func (ct *CodeTable) fill(n *Node, path Code) error {
	if n.IsLeaf() {
		if !n.Symbol.IsValid() {
			return &InvalidTreeError{Reason: fmt.Sprintf("leaf holds invalid symbol %d", n.Symbol)}
		}
		ct.codes[n.Symbol] = path
		ct.present[n.Symbol] = true
		if ct.maxSize < path.Size {
			ct.maxSize = path.Size
		}
		return nil
	}
	if n.Left == nil || n.Right == nil {
		return &InvalidTreeError{Reason: fmt.Sprintf("internal node at %s has only one child", path)}
	}
	if path.Size >= maxBitsPerCode {
		return ErrCodeTooLong
	}
	if err := ct.fill(n.Left, path.Append(0)); err != nil {
		return err
	}
	return ct.fill(n.Right, path.Append(1))
}

// Encode returns the Code for the given Symbol.  The second return value is
// false if the Symbol does not appear in the tree.
func (ct *CodeTable) Encode(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() || !ct.present[symbol] {
		return Code{}, false
	}
	return ct.codes[symbol], true
}

// MaxSize is the bit length of the longest code in the table.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// NumSymbols returns the number of Symbols that have a Code.
func (ct *CodeTable) NumSymbols() int {
	var n int
	for _, ok := range ct.present {
		if ok {
			n++
		}
	}
	return n
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, ct.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
