package huffman

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// ErrMissingCode means a byte of the input has no entry in the code table.
var ErrMissingCode = errors.New("no huffman code for symbol")

// PackStats describes what Pack wrote.
type PackStats struct {
	CodeBits    uint64 // bits contributed by the codes
	PaddingBits uint8  // zero bits appended after the codes
	Bytes       int64  // bytes written to the destination
}

// Padding returns the number of zero bits appended after totalBits code
// bits. An already aligned stream still gets a full zero byte.
func Padding(totalBits uint64) uint8 {
	return uint8(8 - totalBits%8)
}

// Pack writes the code of every byte of data, in order, followed by the
// padding bits. Bits are packed most significant first.
func Pack(w io.Writer, data []byte, codes CodeTable) (PackStats, error) {
	var stats PackStats

	// Pre-map codes to a slice for faster lookup
	var lookup [256]Code
	var present [256]bool
	for b, c := range codes {
		lookup[b] = c
		present[b] = true
	}
	for _, b := range data {
		if !present[b] {
			return stats, errors.Wrapf(ErrMissingCode, "symbol %d", b)
		}
		stats.CodeBits += uint64(lookup[b].Len)
	}
	stats.PaddingBits = Padding(stats.CodeBits)

	cw := &countingWriter{w: w}
	buf := bufio.NewWriterSize(cw, 64*1024)
	bw := bitio.NewWriter(buf)
	for _, b := range data {
		c := lookup[b]
		if err := bw.WriteBits(c.Bits, c.Len); err != nil {
			return stats, errors.Wrap(err, "write code bits")
		}
	}
	if err := bw.WriteBits(0, stats.PaddingBits); err != nil {
		return stats, errors.Wrap(err, "write padding")
	}
	if err := bw.Close(); err != nil {
		return stats, errors.Wrap(err, "close bit writer")
	}
	if err := buf.Flush(); err != nil {
		return stats, errors.Wrap(err, "flush")
	}
	stats.Bytes = cw.n
	return stats, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
