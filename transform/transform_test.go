package transform

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func transformCases() [][]byte {
	rng := rand.New(rand.NewSource(3))
	random := make([]byte, 2048)
	rng.Read(random)

	return [][]byte{
		nil,
		{0},
		{0xFF},
		bytes.Repeat([]byte{0xFF}, 20),
		bytes.Repeat([]byte{0x00}, 500),
		[]byte("The quick brown fox jumps over the lazy dog."),
		bytes.Repeat([]byte{'A'}, 1000),
		random,
	}
}

func TestRLERoundTrip(t *testing.T) {
	for i, in := range transformCases() {
		out := RLEDecode(RLEEncode(in))
		if len(in) == 0 {
			require.Empty(t, out, "case %d", i)
			continue
		}
		require.Equal(t, in, out, "case %d", i)
	}
}

func TestRLECollapsesRuns(t *testing.T) {
	in := bytes.Repeat([]byte{'x'}, 259)
	require.Equal(t, []byte{0xFF, 'x', 255}, RLEEncode(in))
}

func TestRLEEscapeRuns(t *testing.T) {
	// Runs of the escape byte itself must survive; the run form is ambiguous
	// with the doubled escape, so they travel as doubled literals.
	in := bytes.Repeat([]byte{0xFF}, 10)
	enc := RLEEncode(in)
	require.Equal(t, bytes.Repeat([]byte{0xFF}, 20), enc)
	require.Equal(t, in, RLEDecode(enc))
}

func TestDeltaRoundTrip(t *testing.T) {
	for i, in := range transformCases() {
		out := DeltaDecode(DeltaEncode(in))
		if len(in) == 0 {
			require.Empty(t, out, "case %d", i)
			continue
		}
		require.Equal(t, in, out, "case %d", i)
	}
}

func TestDeltaRamp(t *testing.T) {
	// A byte ramp becomes a constant stream of ones.
	in := make([]byte, 512)
	for i := range in {
		in[i] = byte(i)
	}
	enc := DeltaEncode(in)
	for i := 1; i < len(enc); i++ {
		require.Equal(t, byte(1), enc[i])
	}
}

func TestSparseRoundTrip(t *testing.T) {
	for i, in := range transformCases() {
		out := SparseDecode(SparseEncode(in))
		if len(in) == 0 {
			require.Empty(t, out, "case %d", i)
			continue
		}
		require.Equal(t, in, out, "case %d", i)
	}
}

func TestSparseCollapsesZeros(t *testing.T) {
	in := make([]byte, 10000)
	enc := SparseEncode(in)
	require.Equal(t, []byte{0xFF, 0x00, byte(9996 >> 8), byte(9996 & 0xFF)}, enc)
}

func TestRecordRoundTrip(t *testing.T) {
	sizes := []int{0, 1, 511, 512, 513, 1024, 1500, 4096, 5000}
	for _, n := range sizes {
		in := make([]byte, n)
		for i := range in {
			in[i] = byte(i * 7)
		}

		out := RecordDeinterleave(RecordInterleave(in, 512))
		if n == 0 {
			require.Empty(t, out, "size %d", n)
			continue
		}
		require.Equal(t, in, out, "size %d", n)
	}
}

func TestRecordRaggedTail(t *testing.T) {
	// An input that is not a multiple of the record size leaves the last
	// record short; the inverse must still place every byte.
	in := []byte("abcdefghij")
	out := RecordDeinterleave(RecordInterleave(in, 4))
	require.Equal(t, in, out)
}

func TestRecordGroupsPositions(t *testing.T) {
	in := []byte{1, 2, 1, 2, 1, 2, 1, 2}
	enc := RecordInterleave(in, 2)
	require.Equal(t, []byte{0, 2, 1, 1, 1, 1, 2, 2, 2, 2}, enc)
}

func TestWordRoundTrip(t *testing.T) {
	cases := append(transformCases(),
		[]byte("the function returns true while the class is null"),
		[]byte("<html>https://example.com</html>"),
		[]byte{0x7F, 0x80, 0xFF, 0x7F},
	)
	for i, in := range cases {
		out := WordDecode(WordEncode(in))
		if len(in) == 0 {
			require.Empty(t, out, "case %d", i)
			continue
		}
		require.Equal(t, in, out, "case %d", i)
	}
}

func TestWordTokenizesCommonWords(t *testing.T) {
	in := []byte("the quick and the dead")
	enc := WordEncode(in)
	require.Less(t, len(enc), len(in))
}

func TestPatternRoundTrip(t *testing.T) {
	in := bytes.Repeat([]byte("abc"), 100)
	enc := PatternEncode(in)
	require.NotNil(t, enc)
	require.Less(t, len(enc), len(in))
	require.Equal(t, in, PatternDecode(enc))
}

func TestPatternTrailing(t *testing.T) {
	in := append(bytes.Repeat([]byte("xyz"), 50), []byte("tail")...)
	enc := PatternEncode(in)
	require.NotNil(t, enc)
	require.Equal(t, in, PatternDecode(enc))
}

func TestPatternRejectsNoise(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	in := make([]byte, 256)
	rng.Read(in)
	require.Nil(t, PatternEncode(in))
}
