package rangecoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khaledalam/kcomp/internal/buffer"
)

// A fixed 4-symbol distribution over total 10: intervals [0,1) [1,4) [4,8) [8,10).
var testCum = [][2]uint32{{0, 1}, {1, 4}, {4, 8}, {8, 10}}

func symbolFor(f uint32) int {
	for i, c := range testCum {
		if f >= c[0] && f < c[1] {
			return i
		}
	}

	return -1
}

func TestEncodeDecodeSymmetry(t *testing.T) {
	syms := []int{0, 1, 2, 3, 3, 2, 1, 0, 1, 1, 1, 2, 0, 3, 3, 3, 2, 2, 1, 0}

	out := buffer.NewWriter(64)
	enc := NewEncoder(out)
	for _, s := range syms {
		enc.Encode(testCum[s][0], testCum[s][1], 10)
	}
	enc.Finish()

	dec := NewDecoder(buffer.NewReader(out.Bytes()))
	for i, want := range syms {
		f := dec.GetFreq(10)
		got := symbolFor(f)
		require.Equal(t, want, got, "symbol %d", i)
		dec.Decode(testCum[got][0], testCum[got][1], 10)
	}
}

func TestLongSkewedStream(t *testing.T) {
	// A heavily skewed distribution forces many renormalizations.
	syms := make([]int, 5000)
	for i := range syms {
		if i%97 == 0 {
			syms[i] = 0
		} else {
			syms[i] = 2
		}
	}

	out := buffer.NewWriter(64)
	enc := NewEncoder(out)
	for _, s := range syms {
		enc.Encode(testCum[s][0], testCum[s][1], 10)
	}
	enc.Finish()

	dec := NewDecoder(buffer.NewReader(out.Bytes()))
	for i, want := range syms {
		got := symbolFor(dec.GetFreq(10))
		require.Equal(t, want, got, "symbol %d", i)
		dec.Decode(testCum[got][0], testCum[got][1], 10)
	}
}

func TestFinishWritesFourBytes(t *testing.T) {
	out := buffer.NewWriter(8)
	enc := NewEncoder(out)
	enc.Finish()

	require.Equal(t, 4, out.Len())
}
