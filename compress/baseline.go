// Package compress holds the baseline codecs the bench command lines up
// against the hybrid compressor: S2, LZ4, Zstandard and kcomp itself, behind
// one whole-buffer Codec interface. The hybrid compressor does not depend on
// this package.
//
// The interface is shaped by how the bench uses it: every measurement starts
// from the uncompressed input, so Decompress receives the original size as a
// hint. Block formats that do not record their decompressed size (LZ4, S2)
// use it to allocate exactly once instead of guessing.
package compress

import (
	"time"

	"github.com/khaledalam/kcomp/format"
	"github.com/khaledalam/kcomp/internal/hash"
)

// Codec is one entrant in the baseline comparison.
type Codec interface {
	// Type identifies the codec in reports.
	Type() format.CompressionType

	// Compress compresses the whole buffer. The returned slice is owned by
	// the caller; the input is not modified.
	Compress(data []byte) ([]byte, error)

	// Decompress inflates a buffer produced by Compress. originalSize is the
	// known pre-compression size; codecs whose format does not carry it use
	// it to size the output buffer.
	Decompress(data []byte, originalSize int) ([]byte, error)
}

// Baselines returns the comparison set in report order: the stock codecs
// first for context, the hybrid compressor last.
func Baselines() []Codec {
	return []Codec{
		S2Codec{},
		LZ4Codec{},
		ZstdCodec{},
		KcompCodec{},
	}
}

// Result is one codec's measurement over one input.
type Result struct {
	Type           format.CompressionType
	OriginalSize   int
	CompressedSize int
	CompressTime   time.Duration
	DecompressTime time.Duration

	// Verified reports whether the decompressed output matched the input
	// digest. False means either a codec error or a round-trip mismatch.
	Verified bool

	// Err holds the codec error, if any.
	Err error
}

// Ratio returns compressed size over original size. Values below 1.0 mean
// the codec shrank the input; 0 when the input was empty.
func (r Result) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0
	}

	return float64(r.CompressedSize) / float64(r.OriginalSize)
}

// SpaceSavings returns the saved share as a percentage: at most 100, and
// negative when the compressed output is larger than the input.
func (r Result) SpaceSavings() float64 {
	return (1.0 - r.Ratio()) * 100.0
}

// Measure runs one codec over input: compress, decompress, verify the
// round-trip by digest, and time both directions.
func Measure(c Codec, input []byte) Result {
	r := Result{Type: c.Type(), OriginalSize: len(input)}

	start := time.Now()
	compressed, err := c.Compress(input)
	r.CompressTime = time.Since(start)
	if err != nil {
		r.Err = err

		return r
	}
	r.CompressedSize = len(compressed)

	start = time.Now()
	restored, err := c.Decompress(compressed, len(input))
	r.DecompressTime = time.Since(start)
	if err != nil {
		r.Err = err

		return r
	}

	r.Verified = hash.Equal(restored, input)

	return r
}
