package lz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLZOptRoundTrip(t *testing.T) {
	for i, in := range lzCases() {
		out := LZOptDecode(LZOptEncode(in))
		if len(in) == 0 {
			require.Empty(t, out, "case %d", i)
			continue
		}
		require.Equal(t, in, out, "case %d", i)
	}
}

func TestLZOptEscapedLiterals(t *testing.T) {
	in := []byte{0xFD, 1, 0xFE, 2, 0xFF, 3, 0xFD}
	require.Equal(t, in, LZOptDecode(LZOptEncode(in)))
}

func TestLZOptOptimalNotWorseThanGreedy(t *testing.T) {
	in := bytes.Repeat([]byte("abcdefghij_abcdefghij_xyz"), 20)

	optimal := LZOptEncode(in)
	greedy := lzoptGreedy(in)
	require.LessOrEqual(t, len(optimal), len(greedy),
		"the DP parse must never lose to the greedy parse on byte cost")
	require.Equal(t, in, LZOptDecode(greedy))
}

func TestLZOptInvalidBackReferenceStops(t *testing.T) {
	frame := []byte{0xFD, 0x00, 0x01, 0x00, 0x00} // xlong match into empty output
	require.Empty(t, LZOptDecode(frame))
}
