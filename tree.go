package hufftree

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  A leaf has no children and holds a
// valid Symbol; an internal node has exactly two children and holds
// InvalidSymbol.  Every node is owned by its parent.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// NewLeaf constructs a leaf Node.
func NewLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{Symbol: symbol, Weight: weight}
}

// NewInternal constructs an internal Node that takes ownership of left and
// right.  Its weight is the saturating sum of theirs.
func NewInternal(left *Node, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node requires two children")

	weight := left.Weight + right.Weight
	if weight < left.Weight {
		weight = math.MaxUint64
	}
	return &Node{Symbol: InvalidSymbol, Weight: weight, Left: left, Right: right}
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// NumLeaves returns the number of leaves in the subtree rooted at this Node.
func (n *Node) NumLeaves() int {
	if n.IsLeaf() {
		return 1
	}
	var count int
	if n.Left != nil {
		count += n.Left.NumLeaves()
	}
	if n.Right != nil {
		count += n.Right.NumLeaves()
	}
	return count
}

// Dump writes a programmer-readable debugging dump of the tree rooted at this
// Node to the given writer, one line per node in preorder.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	dumpNode(&buf, n, Code{})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, path Code) {
	if n.IsLeaf() {
		fmt.Fprintf(buf, "\tLeaf(%s) = {%d, %d}\n", path, n.Symbol, n.Weight)
		return
	}
	fmt.Fprintf(buf, "\tInternal(%s) = {%d}\n", path, n.Weight)
	if n.Left != nil {
		dumpNode(buf, n.Left, path.Append(0))
	}
	if n.Right != nil {
		dumpNode(buf, n.Right, path.Append(1))
	}
}

// BuildTree constructs a Huffman tree from the given frequencies by greedily
// merging the two lightest nodes until only the root remains.  Symbols with
// a frequency of 0 are omitted from the tree.
//
// Ties between nodes of equal weight are broken in favor of the node that
// was inserted first, with leaves inserted in ascending Symbol order, so the
// resulting tree is a pure function of freqs.
//
// If only one symbol has a non-zero frequency, the root is that symbol's
// leaf.  At least one symbol must have a non-zero frequency.
//
func BuildTree(freqs *FrequencyTable) *Node {
	h := nodeHeap{list: make([]nodeAndSeq, 0, NumSymbols)}
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			h.list = append(h.list, nodeAndSeq{NewLeaf(symbol, freq), h.nextSeq})
			h.nextSeq++
		}
	}
	assert.Assertf(len(h.list) != 0, "BuildTree requires at least one symbol with a non-zero frequency")

	h.Init()
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		heap.Push(&h, nodeAndSeq{NewInternal(a.node, b.node), h.nextSeq})
		h.nextSeq++
	}
	return heap.Pop(&h).(nodeAndSeq).node
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list    []nodeAndSeq
	nextSeq uint32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
