// Package suffix builds suffix arrays by prefix doubling, with the inverse
// permutation and an LCP table. The O(n log^2 n) bound holds for any input,
// unlike a plain comparison sort of suffixes, which degrades quadratically on
// long repeats. Suffix order is unambiguous, so consumers (BWT, LZX match
// finding) see identical output regardless of the construction algorithm.
package suffix

import "sort"

// Array is a suffix array over a byte string, with the inverse permutation
// (rank of each suffix) and the LCP of neighbouring suffixes.
type Array struct {
	SA  []int32
	Inv []int32
	LCP []int32
}

// New builds the suffix array of text. A suffix that is a proper prefix of
// another sorts first.
func New(text []byte) *Array {
	n := len(text)
	a := &Array{
		SA:  make([]int32, n),
		Inv: make([]int32, n),
		LCP: make([]int32, n),
	}
	if n == 0 {
		return a
	}

	rank := make([]int32, n)
	next := make([]int32, n)
	for i := 0; i < n; i++ {
		a.SA[i] = int32(i)
		rank[i] = int32(text[i])
	}

	for k := 1; k < n; k *= 2 {
		key := func(i int32) (int32, int32) {
			r2 := int32(-1)
			if int(i)+k < n {
				r2 = rank[int(i)+k]
			}

			return rank[i], r2
		}
		sort.Slice(a.SA, func(x, y int) bool {
			a1, a2 := key(a.SA[x])
			b1, b2 := key(a.SA[y])
			if a1 != b1 {
				return a1 < b1
			}

			return a2 < b2
		})

		next[a.SA[0]] = 0
		for i := 1; i < n; i++ {
			p1, p2 := key(a.SA[i-1])
			c1, c2 := key(a.SA[i])
			next[a.SA[i]] = next[a.SA[i-1]]
			if c1 != p1 || c2 != p2 {
				next[a.SA[i]]++
			}
		}
		rank, next = next, rank

		if rank[a.SA[n-1]] == int32(n-1) {
			break
		}
	}

	for i := 0; i < n; i++ {
		a.Inv[a.SA[i]] = int32(i)
	}
	a.buildLCP(text)

	return a
}

// buildLCP fills the LCP table with Kasai's algorithm: LCP[r] is the longest
// common prefix of the suffixes ranked r-1 and r.
func (a *Array) buildLCP(text []byte) {
	n := len(text)
	h := 0
	for i := 0; i < n; i++ {
		if a.Inv[i] == 0 {
			h = 0
			continue
		}
		j := int(a.SA[a.Inv[i]-1])
		for i+h < n && j+h < n && text[i+h] == text[j+h] {
			h++
		}
		a.LCP[a.Inv[i]] = int32(h)
		if h > 0 {
			h--
		}
	}
}
