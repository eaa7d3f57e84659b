// Package rangecoder implements a carry-less 32-bit range coder over byte
// streams. Renormalization shifts out a byte whenever the top 8 bits of low
// and high agree, so no carry propagation is needed.
//
// Cumulative frequencies passed to Encode/Decode must satisfy
// lo < hi <= total and total < 1<<15; the 64-bit intermediate products then
// never lose precision against the >= 1<<24 interval width.
package rangecoder

import "github.com/khaledalam/kcomp/internal/buffer"

const renormThreshold = 1 << 24

// Encoder narrows a 32-bit interval [low, high] symbol by symbol, emitting
// the settled top bytes into its output Writer.
type Encoder struct {
	out  *buffer.Writer
	low  uint32
	high uint32
}

// NewEncoder creates an Encoder writing to out.
func NewEncoder(out *buffer.Writer) *Encoder {
	return &Encoder{out: out, low: 0, high: 0xFFFFFFFF}
}

// Encode narrows the interval to the sub-range [cumLo/total, cumHi/total).
func (e *Encoder) Encode(cumLo, cumHi, total uint32) {
	r := uint64(e.high) - uint64(e.low) + 1
	e.high = e.low + uint32(r*uint64(cumHi)/uint64(total)-1)
	e.low = e.low + uint32(r*uint64(cumLo)/uint64(total))

	for (e.low^e.high) < renormThreshold {
		e.out.Put(byte(e.high >> 24))
		e.low <<= 8
		e.high = (e.high << 8) | 0xFF
	}
}

// Finish flushes the remaining state as the 4 bytes of low, MSB first.
func (e *Encoder) Finish() {
	for i := 0; i < 4; i++ {
		e.out.Put(byte(e.low >> 24))
		e.low <<= 8
	}
}

// Decoder mirrors Encoder, tracking the code value read from the input.
type Decoder struct {
	in   *buffer.Reader
	low  uint32
	high uint32
	code uint32
}

// NewDecoder creates a Decoder over in, priming code with the first 4 bytes.
func NewDecoder(in *buffer.Reader) *Decoder {
	d := &Decoder{in: in, low: 0, high: 0xFFFFFFFF}
	for i := 0; i < 4; i++ {
		d.code = (d.code << 8) | uint32(in.Get())
	}

	return d
}

// Overrun reports how many zero bytes have been pulled past the end of the
// input. See buffer.Reader.Overrun.
func (d *Decoder) Overrun() int {
	return d.in.Overrun()
}

// GetFreq returns the scaled frequency within [0, total) that the pending
// symbol falls into. The caller inverts it to a symbol and calls Decode with
// that symbol's cumulative range.
func (d *Decoder) GetFreq(total uint32) uint32 {
	r := uint64(d.high) - uint64(d.low) + 1
	off := uint64(d.code) - uint64(d.low)

	return uint32(((off + 1) * uint64(total) - 1) / r)
}

// Decode narrows the interval exactly as the encoder did for this symbol,
// pulling fresh bytes into code during renormalization.
func (d *Decoder) Decode(cumLo, cumHi, total uint32) {
	r := uint64(d.high) - uint64(d.low) + 1
	d.high = d.low + uint32(r*uint64(cumHi)/uint64(total)-1)
	d.low = d.low + uint32(r*uint64(cumLo)/uint64(total))

	for (d.low^d.high) < renormThreshold {
		d.low <<= 8
		d.high = (d.high << 8) | 0xFF
		d.code = (d.code << 8) | uint32(d.in.Get())
	}
}
