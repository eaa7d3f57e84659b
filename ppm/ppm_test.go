package ppm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var testOrders = []int{1, 2, 3, 5, 6}

func roundTrip(t *testing.T, in []byte, order int) {
	t.Helper()

	compressed := Compress(in, order)
	restored := Decompress(compressed, order)
	if len(in) == 0 {
		require.Empty(t, restored, "order %d", order)

		return
	}
	require.Equal(t, in, restored, "order %d", order)
}

func TestRoundTripText(t *testing.T) {
	in := []byte("The quick brown fox jumps over the lazy dog. " +
		"Pack my box with five dozen liquor jugs. " +
		"The quick brown fox jumps over the lazy dog.")

	for _, order := range testOrders {
		roundTrip(t, in, order)
	}
}

func TestRoundTripEmpty(t *testing.T) {
	for _, order := range testOrders {
		roundTrip(t, nil, order)
	}
}

func TestRoundTripSingleBytes(t *testing.T) {
	for _, order := range testOrders {
		for b := 0; b < 256; b += 17 {
			roundTrip(t, []byte{byte(b)}, order)
		}
	}
}

func TestRoundTripAllByteValues(t *testing.T) {
	in := make([]byte, 256)
	for i := range in {
		in[i] = byte(i)
	}
	for _, order := range testOrders {
		roundTrip(t, in, order)
	}
}

func TestRoundTripRuns(t *testing.T) {
	for _, b := range []byte{0, 'A', 0xFF} {
		in := make([]byte, 4096)
		for i := range in {
			in[i] = b
		}
		for _, order := range testOrders {
			roundTrip(t, in, order)
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	in := make([]byte, 8192)
	rng.Read(in)

	for _, order := range testOrders {
		roundTrip(t, in, order)
	}
}

func TestRoundTripRescalePressure(t *testing.T) {
	// Enough repetition of a tiny alphabet to drive order-0 and the hot
	// contexts through multiple rescales.
	in := make([]byte, 60000)
	for i := range in {
		in[i] = "ab"[i%2]
	}
	roundTrip(t, in, 3)
}

func TestCompressesRepetitiveText(t *testing.T) {
	in := make([]byte, 10000)
	for i := range in {
		in[i] = "abcdefgh"[i%8]
	}

	out := Compress(in, 5)
	require.Less(t, len(out), len(in)/10, "periodic text must compress hard")
}

func TestOrderClamping(t *testing.T) {
	in := []byte("clamped orders still round-trip")
	require.Equal(t, Compress(in, 0), Compress(in, 1))
	require.Equal(t, Compress(in, 99), Compress(in, 6))
}

func TestGarbageInputTerminates(t *testing.T) {
	// Streams no encoder produced must still decode to a finite result:
	// the zero-fill drain is bounded.
	for _, order := range testOrders {
		_ = Decompress([]byte{0x01}, order)
		_ = Decompress([]byte{0x00, 0x00, 0x00, 0x00, 0x00}, order)
		_ = Decompress([]byte{0xFF, 0xFF, 0xFF}, order)
	}
}

func TestStreamsDifferByOrder(t *testing.T) {
	in := []byte("order changes the context chain and therefore the stream")
	require.NotEqual(t, Compress(in, 2), Compress(in, 5))
}
