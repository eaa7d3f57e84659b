package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigestDeterministic(t *testing.T) {
	data := []byte("the quick brown fox")
	require.Equal(t, Digest(data), Digest(data))
	require.NotEqual(t, Digest(data), Digest([]byte("the quick brown fax")))
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(nil, nil))
	require.True(t, Equal([]byte("abc"), []byte("abc")))
	require.False(t, Equal([]byte("abc"), []byte("abd")))
	require.False(t, Equal([]byte("abc"), []byte("abcd")))
}
