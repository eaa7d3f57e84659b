package ppm

import (
	"github.com/khaledalam/kcomp/internal/buffer"
	"github.com/khaledalam/kcomp/internal/model"
	"github.com/khaledalam/kcomp/internal/rangecoder"
)

// Order 1 predates the Witten-Bell chain and keeps its original simplified
// escape scheme: raw counts, no exclusion, and a miss falls straight through
// to order 0.

func compressOrder1(in []byte) []byte {
	ctx := make([]model.Model257, 256)
	for i := range ctx {
		ctx[i].InitEscapeOnly()
	}
	var order0 model.Model257
	order0.InitUniform256()

	out := buffer.NewWriter(len(in)/2 + 16)
	enc := rangecoder.NewEncoder(out)

	var prev byte
	for _, b := range in {
		m := &ctx[prev]
		if m.Get(int(b)) != 0 {
			lo, hi := m.Cum(int(b))
			enc.Encode(lo, hi, m.Total())
		} else {
			lo, hi := m.Cum(model.Escape)
			enc.Encode(lo, hi, m.Total())

			lo, hi = order0.Cum(int(b))
			enc.Encode(lo, hi, order0.Total())
		}

		m.Bump(int(b))
		order0.Bump(int(b))
		prev = b
	}

	m := &ctx[prev]
	lo, hi := m.Cum(model.Escape)
	enc.Encode(lo, hi, m.Total())

	lo, hi = order0.Cum(model.Escape)
	enc.Encode(lo, hi, order0.Total())

	enc.Finish()

	return out.Bytes()
}

func decompressOrder1(in []byte) []byte {
	ctx := make([]model.Model257, 256)
	for i := range ctx {
		ctx[i].InitEscapeOnly()
	}
	var order0 model.Model257
	order0.InitUniform256()

	dec := rangecoder.NewDecoder(buffer.NewReader(in))
	out := make([]byte, 0, len(in)*3)

	var prev byte
	for dec.Overrun() <= maxDrain {
		m := &ctx[prev]
		sym := m.FindByFreq(dec.GetFreq(m.Total()))
		lo, hi := m.Cum(sym)
		dec.Decode(lo, hi, m.Total())

		if sym == model.Escape {
			s0 := order0.FindByFreq(dec.GetFreq(order0.Total()))
			lo, hi = order0.Cum(s0)
			dec.Decode(lo, hi, order0.Total())
			if s0 == model.Escape {
				break
			}
			sym = s0
		}

		b := byte(sym)
		out = append(out, b)
		m.Bump(sym)
		order0.Bump(sym)
		prev = b
	}

	return out
}
