package compress

import "github.com/khaledalam/kcomp/format"

// ZstdCodec is the Zstandard baseline, the strongest stock entrant.
//
// Two builds exist: a pure-Go implementation (klauspost/compress/zstd) and a
// cgo binding (valyala/gozstd), selected by build tag. Both produce standard
// zstd frames; the bench numbers differ, the format does not.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}
