package compress

import (
	"github.com/khaledalam/kcomp"
	"github.com/khaledalam/kcomp/format"
)

// KcompCodec enters the hybrid compressor itself into the comparison. The
// core API is total, so both directions always return a nil error; a corrupt
// frame surfaces as a failed digest check in Measure, not as an error.
type KcompCodec struct{}

var _ Codec = KcompCodec{}

func (KcompCodec) Type() format.CompressionType {
	return format.CompressionKcomp
}

func (KcompCodec) Compress(data []byte) ([]byte, error) {
	return kcomp.Compress(data), nil
}

// Decompress ignores the size hint: kcomp frames are self-terminating.
func (KcompCodec) Decompress(data []byte, _ int) ([]byte, error) {
	return kcomp.Decompress(data), nil
}
