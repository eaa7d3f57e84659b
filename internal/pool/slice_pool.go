package pool

import "sync"

// int32SlicePool recycles the int32 work arrays used by the BWT inverse.
// The hybrid driver runs several BWT-bearing candidates per compression call;
// each needs an input-sized next-index table, which is worth recycling.
var int32SlicePool = sync.Pool{
	New: func() any {
		s := make([]int32, 0, 1024)

		return &s
	},
}

// GetInt32Slice returns an int32 slice of length n. Contents are undefined.
func GetInt32Slice(n int) []int32 {
	p, _ := int32SlicePool.Get().(*[]int32)
	s := *p
	if cap(s) < n {
		s = make([]int32, n)
	}

	return s[:n]
}

// PutInt32Slice returns a slice obtained from GetInt32Slice to the pool.
func PutInt32Slice(s []int32) {
	if s == nil {
		return
	}
	s = s[:0]
	int32SlicePool.Put(&s)
}
