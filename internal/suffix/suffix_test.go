package suffix

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// naive builds the suffix array by direct comparison, shorter-prefix first.
func naive(text []byte) []int32 {
	n := len(text)
	sa := make([]int32, n)
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(x, y int) bool {
		return string(text[sa[x]:]) < string(text[sa[y]:])
	})

	return sa
}

func TestMatchesNaive(t *testing.T) {
	cases := [][]byte{
		[]byte("banana"),
		[]byte("mississippi"),
		[]byte("aaaaaaaaaa"),
		[]byte("abcabcabcabc"),
		[]byte{0, 255, 0, 255, 1, 0, 0},
		[]byte("a"),
		{},
	}

	for _, text := range cases {
		a := New(text)
		require.Equal(t, naive(text), a.SA, "text %q", text)
	}
}

func TestInverse(t *testing.T) {
	text := []byte("the quick brown fox jumps over the lazy dog")
	a := New(text)

	for i := range a.SA {
		require.Equal(t, int32(i), a.Inv[a.SA[i]])
	}
}

func TestLCP(t *testing.T) {
	text := []byte("banana")
	a := New(text)

	// Suffix order: a, ana, anana, banana, na, nana.
	require.Equal(t, []int32{5, 3, 1, 0, 4, 2}, a.SA)
	require.Equal(t, []int32{0, 1, 3, 0, 0, 2}, a.LCP)
}

func TestLongRepetitive(t *testing.T) {
	// Long repeats are the degenerate case for comparison sorts; the
	// prefix-doubling construction must stay consistent with the naive order.
	text := make([]byte, 2000)
	for i := range text {
		text[i] = "ab"[i%2]
	}
	a := New(text)
	require.Equal(t, naive(text), a.SA)
}
