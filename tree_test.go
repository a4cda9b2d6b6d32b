package hufftree

import (
	"strings"
	"testing"
)

func makeTestFrequencies() FrequencyTable {
	var freqs FrequencyTable
	copy(freqs[:], []uint64{5, 9, 12, 13, 16, 45})
	return freqs
}

func TestBuildTree(t *testing.T) {
	freqs := makeTestFrequencies()
	root := BuildTree(&freqs)

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tInternal(\"\") = {100}\n",
		"\tLeaf(\"0\") = {5, 45}\n",
		"\tInternal(\"1\") = {55}\n",
		"\tInternal(\"10\") = {25}\n",
		"\tLeaf(\"100\") = {2, 12}\n",
		"\tLeaf(\"101\") = {3, 13}\n",
		"\tInternal(\"11\") = {30}\n",
		"\tInternal(\"110\") = {14}\n",
		"\tLeaf(\"1100\") = {0, 5}\n",
		"\tLeaf(\"1101\") = {1, 9}\n",
		"\tLeaf(\"111\") = {4, 16}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = root.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if n := root.NumLeaves(); n != 6 {
		t.Errorf("expected 6 leaves, got %d", n)
	}
}

func TestBuildTree_TiesAreFIFO(t *testing.T) {
	var freqs FrequencyTable
	freqs['a'] = 1
	freqs['b'] = 1
	freqs['c'] = 1
	freqs[PseudoEOF] = 1

	codes, err := BuildCodeTable(BuildTree(&freqs))
	if err != nil {
		t.Fatalf("BuildCodeTable failed: %v", err)
	}

	type testRow struct {
		sym    Symbol
		expect Code
	}

	testData := [...]testRow{
		{sym: 'a', expect: MakeCode(2, 0x0)},
		{sym: 'b', expect: MakeCode(2, 0x1)},
		{sym: 'c', expect: MakeCode(2, 0x2)},
		{sym: PseudoEOF, expect: MakeCode(2, 0x3)},
	}
	for _, row := range testData {
		actual, ok := codes.Encode(row.sym)
		if !ok {
			t.Errorf("no code for symbol %d", row.sym)
			continue
		}
		if actual != row.expect {
			t.Errorf("Encode(%d):\n\texpect: %s\n\tactual: %s", row.sym, row.expect, actual)
		}
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	var freqs FrequencyTable
	freqs[PseudoEOF] = 1

	root := BuildTree(&freqs)
	if !root.IsLeaf() {
		t.Fatalf("expected a lone leaf, got an internal node")
	}
	if root.Symbol != PseudoEOF {
		t.Errorf("expected symbol %d, got %d", PseudoEOF, root.Symbol)
	}

	codes, err := BuildCodeTable(root)
	if err != nil {
		t.Fatalf("BuildCodeTable failed: %v", err)
	}
	hc, ok := codes.Encode(PseudoEOF)
	if !ok || hc.Size != 0 {
		t.Errorf("expected empty code, got %s (present=%v)", hc, ok)
	}
}

func TestBuildTree_InternalCount(t *testing.T) {
	var freqs FrequencyTable
	for symbol := Symbol(0); symbol < NumSymbols; symbol += 3 {
		freqs[symbol] = uint64(symbol)*7%11 + 1
	}

	root := BuildTree(&freqs)

	var leaves, internals int
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			leaves++
			return
		}
		if n.Left == nil || n.Right == nil {
			t.Fatalf("internal node with a single child")
		}
		internals++
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	if expect := freqs.NumPresent(); leaves != expect {
		t.Errorf("expected %d leaves, got %d", expect, leaves)
	}
	if internals != leaves-1 {
		t.Errorf("expected %d internal nodes, got %d", leaves-1, internals)
	}
}
