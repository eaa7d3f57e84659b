//go:build cgo

package compress

import "github.com/valyala/gozstd"

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstd.DefaultCompressionLevel), nil
}

func (ZstdCodec) Decompress(data []byte, originalSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(make([]byte, 0, originalSize), data)
}
