package huffman

import (
	"bufio"
	"fmt"
	"io"
)

// WriteReport prints the frequency table by descending count, then the code
// table by ascending symbol.
func WriteReport(w io.Writer, res *Result) error {
	bw := bufio.NewWriter(w)
	for _, row := range res.Freqs.Sorted() {
		fmt.Fprintf(bw, "Byte '%d': %d appearances\n", row.Symbol, row.Count)
	}
	fmt.Fprintf(bw, "\nHuffman Encoding :\n")
	for _, s := range res.Codes.Symbols() {
		fmt.Fprintf(bw, "Byte '%d': Huffman Code '%s'\n", s, res.Codes[s])
	}
	bits := res.Codes.WeightedPathLength(res.Freqs)
	fmt.Fprintf(bw, "\n%d symbols, %d input bytes, %d code bits, %d padding bits\n",
		len(res.Codes), res.InputBytes, bits, Padding(bits))
	return bw.Flush()
}
