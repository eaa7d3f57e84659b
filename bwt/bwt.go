// Package bwt implements the Burrows-Wheeler transform and move-to-front
// coding. The forward transform sorts the input's suffixes and emits the byte
// preceding each suffix in sorted order; the inverse reads that as the BWT of
// the input plus a unique end sentinel and walks the LF-mapping backwards
// from the sentinel's row.
package bwt

import (
	"github.com/khaledalam/kcomp/internal/pool"
	"github.com/khaledalam/kcomp/internal/suffix"
)

// Encode returns the BWT of in together with the primary index: the position
// of the whole input (suffix 0) in sorted suffix order, which holds the
// input's last byte.
func Encode(in []byte) ([]byte, uint32) {
	if len(in) == 0 {
		return nil, 0
	}

	n := len(in)
	sa := suffix.New(in)

	out := make([]byte, n)
	primary := uint32(0)
	for i := 0; i < n; i++ {
		if sa.SA[i] == 0 {
			primary = uint32(i)
			out[i] = in[n-1]
		} else {
			out[i] = in[sa.SA[i]-1]
		}
	}

	return out, primary
}

// Decode inverts the transform via LF-mapping over the sentinel-extended
// matrix: row 0 is the sentinel's row, ending in the input's last byte, and
// row primary+1 ends in the sentinel. Counting-sort the bytes into the first
// column, then follow the next-index table from row 0 to rebuild the original
// in reverse. An out-of-range primary index yields an empty result.
func Decode(in []byte, primary uint32) []byte {
	if len(in) == 0 {
		return nil
	}
	n := len(in)
	if primary >= uint32(n) {
		return nil
	}

	var count [256]int
	for _, c := range in {
		count[c]++
	}

	var next [256]int
	sum := 0
	for i := 0; i < 256; i++ {
		next[i] = sum
		sum += count[i]
	}

	// Last column with the sentinel's row in front; the byte stored at
	// primary+1 stands in for the sentinel and takes no rank.
	l := append([]byte{in[primary]}, in...)
	t := pool.GetInt32Slice(n + 1)
	defer pool.PutInt32Slice(t)
	for i := 0; i <= n; i++ {
		// +1: the sentinel sorts first in the first column.
		t[i] = int32(next[l[i]] + 1)
		if i != int(primary)+1 {
			next[l[i]]++
		}
	}

	out := make([]byte, n)
	j := int32(0)
	for i := n; i > 0; i-- {
		out[i-1] = l[j]
		j = t[j]
	}

	return out
}

// MTFEncode replaces each byte with its position in a move-to-front list
// initialized to 0..255.
func MTFEncode(in []byte) []byte {
	out := make([]byte, 0, len(in))

	var list [256]byte
	for i := range list {
		list[i] = byte(i)
	}

	for _, c := range in {
		pos := 0
		for list[pos] != c {
			pos++
		}
		out = append(out, byte(pos))

		copy(list[1:pos+1], list[:pos])
		list[0] = c
	}

	return out
}

// MTFDecode reverses MTFEncode.
func MTFDecode(in []byte) []byte {
	out := make([]byte, 0, len(in))

	var list [256]byte
	for i := range list {
		list[i] = byte(i)
	}

	for _, pos := range in {
		c := list[pos]
		out = append(out, c)

		copy(list[1:int(pos)+1], list[:pos])
		list[0] = c
	}

	return out
}
