package lz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLZMARoundTrip(t *testing.T) {
	for i, in := range lzCases() {
		out := LZMADecode(LZMAEncode(in))
		if len(in) == 0 {
			require.Empty(t, out, "case %d", i)
			continue
		}
		require.Equal(t, in, out, "case %d", i)
	}
}

func TestLZMAHighBitLiterals(t *testing.T) {
	// Bytes >= 0x80 must travel through the 0x80 escape.
	in := []byte{0x7F, 0x80, 0x81, 0x92, 0xB3, 0xFF, 0x00}
	require.Equal(t, in, LZMADecode(LZMAEncode(in)))
}

func TestLZMALongMatches(t *testing.T) {
	// Runs longer than the medium-match ceiling force the explicit-length
	// long form.
	in := bytes.Repeat([]byte{'z'}, 1000)
	require.Equal(t, in, LZMADecode(LZMAEncode(in)))
}

func TestLZMACompressesPeriodicText(t *testing.T) {
	in := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 100)
	out := LZMAEncode(in)
	require.Less(t, len(out), len(in)/4)
}

func TestLZMAInvalidBackReferenceStops(t *testing.T) {
	frame := []byte{0x81, 0x40} // short match, offset 65, empty output
	require.Empty(t, LZMADecode(frame))
}
