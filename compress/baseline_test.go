package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khaledalam/kcomp/format"
)

func TestBaselinesOrder(t *testing.T) {
	codecs := Baselines()
	require.Len(t, codecs, 4)

	// kcomp reports last, after the stock codecs it is compared against.
	require.Equal(t, format.CompressionKcomp, codecs[len(codecs)-1].Type())

	seen := map[format.CompressionType]bool{}
	for _, c := range codecs {
		require.False(t, seen[c.Type()], "duplicate codec %s", c.Type())
		seen[c.Type()] = true
	}
}

func TestRoundTripAllCodecs(t *testing.T) {
	payload := bytes.Repeat([]byte("adaptive selection test payload. "), 50)

	for _, c := range Baselines() {
		compressed, err := c.Compress(payload)
		require.NoError(t, err, c.Type().String())

		restored, err := c.Decompress(compressed, len(payload))
		require.NoError(t, err, c.Type().String())
		require.Equal(t, payload, restored, c.Type().String())
	}
}

func TestEmptyInputAllCodecs(t *testing.T) {
	for _, c := range Baselines() {
		compressed, err := c.Compress(nil)
		require.NoError(t, err, c.Type().String())

		restored, err := c.Decompress(compressed, 0)
		require.NoError(t, err, c.Type().String())
		require.Empty(t, restored, c.Type().String())
	}
}

func TestMeasureVerifies(t *testing.T) {
	payload := bytes.Repeat([]byte("measurable content "), 100)

	for _, c := range Baselines() {
		r := Measure(c, payload)
		require.NoError(t, r.Err, c.Type().String())
		require.True(t, r.Verified, c.Type().String())
		require.Equal(t, len(payload), r.OriginalSize)
		require.Greater(t, r.CompressedSize, 0)
		require.Less(t, r.Ratio(), 1.0, "repetitive text must shrink under %s", c.Type())
		require.Greater(t, r.SpaceSavings(), 0.0)
	}
}

func TestMeasureEmptyInput(t *testing.T) {
	r := Measure(KcompCodec{}, nil)
	require.NoError(t, r.Err)
	require.True(t, r.Verified)
	require.Zero(t, r.Ratio())
}

func TestMeasureDetectsMismatch(t *testing.T) {
	r := Measure(corruptingCodec{}, []byte("some input bytes"))
	require.NoError(t, r.Err)
	require.False(t, r.Verified)
}

// corruptingCodec drops the last byte on decompression.
type corruptingCodec struct{}

func (corruptingCodec) Type() format.CompressionType {
	return format.CompressionNone
}

func (corruptingCodec) Compress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

func (corruptingCodec) Decompress(data []byte, _ int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return data[:len(data)-1], nil
}
