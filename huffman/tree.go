package huffman

import (
	"container/heap"
	"sort"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned when there is nothing to build a tree from.
var ErrEmptyInput = errors.New("cannot build tree from empty input")

// Node represents a node in the Huffman tree.
type Node struct {
	symbol byte // meaningful for leaves only
	freq   uint64
	left   *Node
	right  *Node
	// insertion order, secondary heap key
	seq int
	// index for heap
	index int
}

// IsLeaf reports whether n holds a symbol.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// Symbol returns the byte value of a leaf.
func (n *Node) Symbol() byte { return n.symbol }

// Freq returns the node weight: the symbol count for a leaf, the sum of
// both children otherwise.
func (n *Node) Freq() uint64 { return n.freq }

func (n *Node) Left() *Node  { return n.left }
func (n *Node) Right() *Node { return n.right }

// priority queue implementation for Node
type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *nodeHeap) Push(x interface{}) {
	n := x.(*Node)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	n.index = -1
	*h = old[:len(old)-1]
	return n
}

// BuildTree builds a Huffman tree from frequencies.
//
// Leaves enter the queue in ascending symbol order and every merged node is
// numbered after them, so nodes of equal weight always leave the queue in
// the same order and the resulting tree is reproducible. A single symbol
// yields a bare leaf.
func BuildTree(freqs Frequencies) (*Node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}
	keys := make([]int, 0, len(freqs))
	for b := range freqs {
		keys = append(keys, int(b))
	}
	sort.Ints(keys)

	h := make(nodeHeap, 0, len(keys))
	seq := 0
	for _, kb := range keys {
		b := byte(kb)
		h = append(h, &Node{symbol: b, freq: freqs[b], seq: seq, index: seq})
		seq++
	}
	heap.Init(&h)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		merged := &Node{freq: a.freq + b.freq, left: a, right: b, seq: seq}
		seq++
		heap.Push(&h, merged)
	}
	return heap.Pop(&h).(*Node), nil
}
