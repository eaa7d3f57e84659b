//go:build !cgo

package compress

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// The bench runs codecs one at a time, so a single shared encoder/decoder
// pair is enough; both are stateless across EncodeAll/DecodeAll calls and
// built on first use.
var (
	zstdOnce sync.Once
	zstdEnc  *zstd.Encoder
	zstdDec  *zstd.Decoder
)

func zstdInit() {
	zstdOnce.Do(func() {
		var err error
		zstdEnc, err = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false))
		if err != nil {
			panic("zstd encoder init: " + err.Error())
		}
		zstdDec, err = zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic("zstd decoder init: " + err.Error())
		}
	})
}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	zstdInit()

	return zstdEnc.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte, originalSize int) ([]byte, error) {
	zstdInit()

	return zstdDec.DecodeAll(data, make([]byte, 0, originalSize))
}
