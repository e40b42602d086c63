package huffman

import "sort"

// Frequencies maps each byte value present in an input to its occurrence count.
type Frequencies map[byte]uint64

// SymbolCount is one row of a frequency table.
type SymbolCount struct {
	Symbol byte
	Count  uint64
}

// CountFrequencies tabulates how often every byte value occurs in data.
// Symbols absent from data have no entry.
func CountFrequencies(data []byte) Frequencies {
	var counts [256]uint64
	for _, b := range data {
		counts[b]++
	}
	freqs := make(Frequencies)
	for i, c := range counts {
		if c > 0 {
			freqs[byte(i)] = c
		}
	}
	return freqs
}

// Total returns the number of bytes the frequencies were counted from.
func (f Frequencies) Total() uint64 {
	var n uint64
	for _, c := range f {
		n += c
	}
	return n
}

// Sorted returns the table by descending count, ties by ascending symbol.
// The order is for display only.
func (f Frequencies) Sorted() []SymbolCount {
	rows := make([]SymbolCount, 0, len(f))
	for s, c := range f {
		rows = append(rows, SymbolCount{Symbol: s, Count: c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Symbol < rows[j].Symbol
	})
	return rows
}
