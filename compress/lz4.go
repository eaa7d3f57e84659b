package compress

import (
	"github.com/pierrec/lz4/v4"

	"github.com/khaledalam/kcomp/format"
)

// LZ4Codec is the LZ4 block-format baseline.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Type() format.CompressionType {
	return format.CompressionLZ4
}

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var c lz4.Compressor
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress inflates an LZ4 block. The block format does not record the
// decompressed size, so the buffer is sized from the caller's hint.
func (LZ4Codec) Decompress(data []byte, originalSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, originalSize)
	n, err := lz4.UncompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
