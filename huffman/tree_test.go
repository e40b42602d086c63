package huffman

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func checkTree(t *testing.T, n *Node) {
	t.Helper()
	if n.IsLeaf() {
		return
	}
	if n.left == nil || n.right == nil {
		t.Fatalf("internal node with a missing child")
	}
	if n.freq != n.left.freq+n.right.freq {
		t.Fatalf("internal weight %d != %d + %d", n.freq, n.left.freq, n.right.freq)
	}
	checkTree(t, n.left)
	checkTree(t, n.right)
}

func countLeaves(n *Node) int {
	if n.IsLeaf() {
		return 1
	}
	return countLeaves(n.left) + countLeaves(n.right)
}

func TestBuildTreeEmpty(t *testing.T) {
	root, err := BuildTree(Frequencies{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if root != nil {
		t.Fatalf("expected nil root")
	}
}

func TestBuildTreeSingleLeaf(t *testing.T) {
	root, err := BuildTree(Frequencies{0x41: 1000})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if !root.IsLeaf() || root.Symbol() != 0x41 || root.Freq() != 1000 {
		t.Fatalf("expected bare leaf 0x41/1000, got %+v", root)
	}
}

func TestBuildTreeShape(t *testing.T) {
	root, err := BuildTree(Frequencies{0: 3, 1: 2, 2: 1})
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	checkTree(t, root)
	if root.Freq() != 6 {
		t.Fatalf("root weight %d != 6", root.Freq())
	}
	// 2 and 1 merge first; the leaf for 0 was queued before that merge so
	// it wins the tie at weight 3 and goes left.
	l, r := root.Left(), root.Right()
	if !l.IsLeaf() || l.Symbol() != 0 {
		t.Fatalf("expected leaf 0 on the left")
	}
	if r.IsLeaf() || r.Freq() != 3 {
		t.Fatalf("expected internal node of weight 3 on the right")
	}
	if r.Left().Symbol() != 2 || r.Right().Symbol() != 1 {
		t.Fatalf("expected 2 left and 1 right under the merged node")
	}
}

func TestBuildTreeAllSymbols(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	freqs := make(Frequencies)
	for i := 0; i < 256; i++ {
		freqs[byte(i)] = uint64(rnd.Intn(1000) + 1)
	}
	root, err := BuildTree(freqs)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	checkTree(t, root)
	if n := countLeaves(root); n != 256 {
		t.Fatalf("leaves %d != 256", n)
	}
	if root.Freq() != freqs.Total() {
		t.Fatalf("root weight %d != total %d", root.Freq(), freqs.Total())
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	freqs := Frequencies{'a': 4, 'b': 4, 'c': 4, 'd': 4, 'e': 2, 'f': 2}
	first, err := BuildTree(freqs)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	want, _ := GenerateCodes(first)
	for i := 0; i < 20; i++ {
		root, _ := BuildTree(freqs)
		got, _ := GenerateCodes(root)
		for s, c := range want {
			if got[s] != c {
				t.Fatalf("run %d: code for %q is %s, first run gave %s", i, s, got[s], c)
			}
		}
	}
}
