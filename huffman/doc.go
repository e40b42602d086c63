/*
Package huffman encodes a byte buffer with a Huffman prefix code built from
the buffer's own byte frequencies.

The pipeline runs in four steps, each consuming the completed output of the
previous one:

	freqs := huffman.CountFrequencies(data)
	root, err := huffman.BuildTree(freqs)
	codes, err := huffman.GenerateCodes(root)
	stats, err := huffman.Pack(w, data, codes)

Encode and EncodeFile run all four. The packed output carries neither the
code table nor the padding count; a reader needs both out of band.
*/
package huffman
