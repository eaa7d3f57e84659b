// Package ppm implements variable-order PPM compression over the range coder.
//
// A predictor of order N keeps one Model257 per observed context of every
// length N down to 1, plus a uniform order-0 model. Each byte is tried at the
// longest context first; a miss encodes the escape symbol and drops one order,
// excluding every symbol the missed context had seen. Order 1 keeps the
// original simplified scheme: raw counts, no Witten-Bell, no exclusion, and a
// direct fall-through to order 0.
//
// Context models are stored in hash maps keyed by the masked rolling context
// and created on first update. A context that has never been updated is
// indistinguishable from an escape-only model: encoding its escape leaves the
// coder interval untouched and excludes nothing, so looking one up and finding
// nothing is handled by simply moving to the next order.
package ppm

import (
	"github.com/khaledalam/kcomp/internal/buffer"
	"github.com/khaledalam/kcomp/internal/model"
	"github.com/khaledalam/kcomp/internal/rangecoder"
)

// MaxOrder is the highest supported context order.
const MaxOrder = 6

// maxDrain bounds how far a decoder may run on zero-filled input. A stream
// produced by Compress finishes with at most 32 bits of pending state, so a
// valid decode pulls only a few zeros past the end; anything beyond this is
// corrupt input, and the loop stops with whatever has been produced.
const maxDrain = 64

// Compress encodes in with a PPM predictor of the given order (1..6).
// Orders outside that range are clamped.
func Compress(in []byte, order int) []byte {
	order = clampOrder(order)
	if order == 1 {
		return compressOrder1(in)
	}

	c := newCoder(order)
	out := buffer.NewWriter(len(in)/2 + 16)
	enc := rangecoder.NewEncoder(out)

	for _, b := range in {
		c.encodeByte(enc, int(b))
		c.update(int(b))
		c.h = c.h<<8 | uint64(b)
	}
	c.encodeEOF(enc)
	enc.Finish()

	return out.Bytes()
}

// Decompress decodes a stream produced by Compress with the same order.
// Structurally invalid input yields a truncated or garbled result; it never
// fails.
func Decompress(in []byte, order int) []byte {
	order = clampOrder(order)
	if order == 1 {
		return decompressOrder1(in)
	}

	c := newCoder(order)
	dec := rangecoder.NewDecoder(buffer.NewReader(in))
	out := make([]byte, 0, len(in)*3)

	for dec.Overrun() <= maxDrain {
		sym, ok := c.decodeByte(dec)
		if !ok {
			break
		}
		out = append(out, byte(sym))
		c.update(sym)
		c.h = c.h<<8 | uint64(sym)
	}

	return out
}

func clampOrder(order int) int {
	if order < 1 {
		return 1
	}
	if order > MaxOrder {
		return MaxOrder
	}

	return order
}

// ctxTable holds the context models of one order, keyed by the masked
// rolling context.
type ctxTable struct {
	mask   uint64
	models map[uint64]*model.Model257
}

func (t *ctxTable) lookup(h uint64) *model.Model257 {
	return t.models[h&t.mask]
}

func (t *ctxTable) bump(h uint64, sym int) {
	key := h & t.mask
	m := t.models[key]
	if m == nil {
		m = new(model.Model257)
		m.InitEscapeOnly()
		t.models[key] = m
	}
	m.Bump(sym)
}

// coder is the shared encode/decode state for orders 2..6. Both sides must
// mutate it in identical sequence or the streams diverge immediately.
type coder struct {
	tables []ctxTable // highest order first
	order0 model.Model257
	h      uint64
}

func newCoder(maxOrder int) *coder {
	c := &coder{tables: make([]ctxTable, 0, maxOrder)}
	for k := maxOrder; k >= 1; k-- {
		c.tables = append(c.tables, ctxTable{
			mask:   1<<(8*uint(k)) - 1,
			models: make(map[uint64]*model.Model257),
		})
	}
	c.order0.InitUniform256()

	return c
}

func (c *coder) encodeByte(enc *rangecoder.Encoder, b int) {
	var excl model.Exclusion
	exclEmpty := true

	for i := range c.tables {
		m := c.tables[i].lookup(c.h)
		if m == nil {
			continue
		}

		if m.Get(b) != 0 && (exclEmpty || !excl.Has(b)) {
			var lo, hi, tot uint32
			if exclEmpty {
				lo, hi, tot = m.WBCum(b)
			} else {
				lo, hi, tot = m.WBCumEx(b, &excl)
			}
			enc.Encode(lo, hi, tot)

			return
		}

		var lo, hi, tot uint32
		if exclEmpty {
			lo, hi, tot = m.WBCum(model.Escape)
		} else {
			lo, hi, tot = m.WBCumEx(model.Escape, &excl)
		}
		enc.Encode(lo, hi, tot)
		m.FillExclusion(&excl)
		exclEmpty = excl.Empty()
	}

	lo, hi := c.order0.Cum(b)
	enc.Encode(lo, hi, c.order0.Total())
}

// encodeEOF emits the escape chain through every live order, ending with the
// order-0 escape that tells the decoder to stop.
func (c *coder) encodeEOF(enc *rangecoder.Encoder) {
	var excl model.Exclusion
	exclEmpty := true

	for i := range c.tables {
		m := c.tables[i].lookup(c.h)
		if m == nil {
			continue
		}

		var lo, hi, tot uint32
		if exclEmpty {
			lo, hi, tot = m.WBCum(model.Escape)
		} else {
			lo, hi, tot = m.WBCumEx(model.Escape, &excl)
		}
		enc.Encode(lo, hi, tot)
		m.FillExclusion(&excl)
		exclEmpty = excl.Empty()
	}

	lo, hi := c.order0.Cum(model.Escape)
	enc.Encode(lo, hi, c.order0.Total())
}

// decodeByte returns the next byte symbol, or ok=false on the order-0 escape.
func (c *coder) decodeByte(dec *rangecoder.Decoder) (int, bool) {
	var excl model.Exclusion
	exclEmpty := true

	for i := range c.tables {
		m := c.tables[i].lookup(c.h)
		if m == nil {
			continue
		}

		var sym int
		var lo, hi, tot uint32
		if exclEmpty {
			tot = m.WBTotal()
			sym = m.WBFind(dec.GetFreq(tot))
			lo, hi, _ = m.WBCum(sym)
		} else {
			tot = m.WBTotalEx(&excl)
			sym = m.WBFindEx(dec.GetFreq(tot), &excl)
			lo, hi, _ = m.WBCumEx(sym, &excl)
		}
		dec.Decode(lo, hi, tot)

		if sym != model.Escape {
			return sym, true
		}
		m.FillExclusion(&excl)
		exclEmpty = excl.Empty()
	}

	tot := c.order0.Total()
	sym := c.order0.FindByFreq(dec.GetFreq(tot))
	lo, hi := c.order0.Cum(sym)
	dec.Decode(lo, hi, tot)
	if sym == model.Escape {
		return 0, false
	}

	return sym, true
}

// update bumps the decoded or encoded byte into every context model on the
// current rolling context, creating models on first touch, plus order 0.
func (c *coder) update(sym int) {
	for i := range c.tables {
		c.tables[i].bump(c.h, sym)
	}
	c.order0.Bump(sym)
}
