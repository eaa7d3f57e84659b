package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferReuse(t *testing.T) {
	bb := GetFrameBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte{1, 2, 3})
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	PutFrameBuffer(bb)

	bb2 := GetFrameBuffer()
	require.Equal(t, 0, bb2.Len(), "pooled buffer must come back empty")
	PutFrameBuffer(bb2)
}

func TestByteBufferPoolDiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	bb.MustWrite(make([]byte, 1024))
	p.Put(bb) // over threshold, dropped

	bb2 := p.Get()
	require.LessOrEqual(t, cap(bb2.B), 1024)
	require.Equal(t, 0, bb2.Len())
}

func TestInt32Slice(t *testing.T) {
	s := GetInt32Slice(100)
	require.Len(t, s, 100)
	for i := range s {
		s[i] = int32(i)
	}
	PutInt32Slice(s)

	s2 := GetInt32Slice(10)
	require.Len(t, s2, 10)
	PutInt32Slice(s2)
}
