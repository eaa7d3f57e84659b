// Package kcomp is a general-purpose lossless compressor with adaptive
// algorithm selection. Compress runs the input through a catalog of
// preprocessor/entropy-coder pipelines, keeps the smallest result and
// prepends a one-byte mode tag; Decompress dispatches on the tag to the
// inverse pipeline.
//
// Both functions are total: Compress succeeds on any input, and Decompress
// tolerates structurally invalid input by returning a truncated or empty
// result instead of failing. The output of Compress is never more than one
// byte longer than its input, because storing the input raw under mode 255 is
// always available.
package kcomp

import "github.com/khaledalam/kcomp/format"

// Compress compresses data and returns a mode-tagged frame. Deterministic:
// the chosen pipeline is a pure function of the input bytes.
func Compress(data []byte) []byte {
	sel := newSelector(data)
	sel.run()

	if len(sel.best) >= len(data) {
		out := make([]byte, 0, 1+len(data))
		out = append(out, byte(format.ModeStoreRaw))

		return append(out, data...)
	}

	out := make([]byte, 0, 1+len(sel.best))
	out = append(out, byte(sel.bestMode))

	return append(out, sel.best...)
}

// Decompress reverses Compress. Empty input yields empty output; an unknown
// mode tag is decoded as PPM order-5 on a best-effort basis.
func Decompress(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	return decodeFrame(format.Mode(data[0]), data[1:])
}
