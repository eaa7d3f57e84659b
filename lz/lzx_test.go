package lz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLZXRoundTrip(t *testing.T) {
	for i, in := range lzCases() {
		out := LZXDecode(LZXEncode(in))
		if len(in) == 0 {
			require.Empty(t, out, "case %d", i)
			continue
		}
		require.Equal(t, in, out, "case %d", i)
	}
}

func TestLZXEscapedLiterals(t *testing.T) {
	in := []byte{0xFC, 0xFD, 0xFE, 0xFF, 0xFC, 1, 2, 3}
	require.Equal(t, in, LZXDecode(LZXEncode(in)))
}

func TestLZXCompressesPeriodicText(t *testing.T) {
	in := bytes.Repeat([]byte("structured repeated content, "), 200)
	out := LZXEncode(in)
	require.Less(t, len(out), len(in)/3)
}

func TestLZXTruncatedFrame(t *testing.T) {
	require.Equal(t, []byte{'x'}, LZXDecode([]byte{'x', 0xFC, 0x05}))
}
