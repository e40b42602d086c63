package huffman

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// MaxCodeLen is the longest code the packer can emit in one write.
const MaxCodeLen = 64

// ErrCodeTooLong is returned when the tree is deeper than MaxCodeLen.
var ErrCodeTooLong = errors.New("huffman code longer than 64 bits")

// Code represents a Huffman code as its bit value and length.
// The low Len bits of Bits hold the path from the root, first branch in
// the most significant position.
type Code struct {
	Bits uint64
	Len  uint8
}

// String renders the code as a string of '0' and '1'.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>(c.Len-p.Len) == p.Bits
}

// CodeTable maps each symbol of the tree to its code.
type CodeTable map[byte]Code

// GenerateCodes walks the tree depth first, appending 0 for a left branch
// and 1 for a right branch. A tree made of a single leaf gets the one-bit
// code 0 so every symbol costs at least one bit.
func GenerateCodes(root *Node) (CodeTable, error) {
	if root == nil {
		return nil, ErrEmptyInput
	}
	codes := make(CodeTable)
	if root.IsLeaf() {
		codes[root.symbol] = Code{Bits: 0, Len: 1}
		return codes, nil
	}
	var walk func(n *Node, val uint64, length int) error
	walk = func(n *Node, val uint64, length int) error {
		if n.IsLeaf() {
			if length > MaxCodeLen {
				return errors.Wrapf(ErrCodeTooLong, "symbol %d at depth %d", n.symbol, length)
			}
			codes[n.symbol] = Code{Bits: val, Len: uint8(length)}
			return nil
		}
		// left adds 0
		if err := walk(n.left, val<<1, length+1); err != nil {
			return err
		}
		// right adds 1
		return walk(n.right, (val<<1)|1, length+1)
	}
	if err := walk(root, 0, 0); err != nil {
		return nil, err
	}
	return codes, nil
}

// Symbols returns the symbols of the table in ascending order.
func (t CodeTable) Symbols() []byte {
	syms := make([]byte, 0, len(t))
	for s := range t {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// WeightedPathLength is the sum over all symbols of count times code length,
// i.e. the number of bits the packer emits before padding.
func (t CodeTable) WeightedPathLength(freqs Frequencies) uint64 {
	var total uint64
	for s, c := range freqs {
		total += c * uint64(t[s].Len)
	}
	return total
}
