package lz

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func lzCases() [][]byte {
	rng := rand.New(rand.NewSource(7))
	random := make([]byte, 4096)
	rng.Read(random)

	escapes := bytes.Repeat([]byte{0xFC, 0xFD, 0xFE, 0xFF, 0x80, 0x7F}, 300)

	periodic := make([]byte, 8192)
	for i := range periodic {
		periodic[i] = "The quick brown fox jumps over the lazy dog. "[i%45]
	}

	runs := bytes.Repeat([]byte{'A'}, 5000)

	return [][]byte{
		nil,
		{0x42},
		{0xFE},
		{0xFF, 0xFF, 0xFF},
		[]byte("abcabcabcabcabcabc"),
		escapes,
		periodic,
		runs,
		random,
	}
}

func TestLZ77RoundTrip(t *testing.T) {
	for i, in := range lzCases() {
		out := LZ77Decode(LZ77Encode(in))
		if len(in) == 0 {
			require.Empty(t, out, "case %d", i)
			continue
		}
		require.Equal(t, in, out, "case %d", i)
	}
}

func TestLZ77CompressesPeriodicText(t *testing.T) {
	in := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 100)
	out := LZ77Encode(in)
	require.Less(t, len(out), len(in)/4)
}

func TestLZ77EscapedLiterals(t *testing.T) {
	// Escape bytes with no matches around them must be doubled, not eaten.
	in := []byte{1, 0xFE, 2, 0xFF, 3}
	require.Equal(t, in, LZ77Decode(LZ77Encode(in)))
}

func TestLZ77InvalidBackReferenceStops(t *testing.T) {
	// A match pointing before the start of the output ends decoding.
	frame := []byte{0xFE, 0x00, 0x10} // len 3, offset 16 with empty output
	require.Empty(t, LZ77Decode(frame))
}

func TestLZ77TruncatedFrame(t *testing.T) {
	require.Equal(t, []byte{'a'}, LZ77Decode([]byte{'a', 0xFE}))
}
