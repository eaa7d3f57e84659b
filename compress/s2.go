package compress

import (
	"github.com/klauspost/compress/s2"

	"github.com/khaledalam/kcomp/format"
)

// S2Codec is the S2 (Snappy-compatible) baseline: far faster than kcomp,
// far weaker on ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte, originalSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(make([]byte, originalSize), data)
}
