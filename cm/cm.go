// Package cm implements a self-contained PAQ-style context-mixing codec: a
// bit-wise arithmetic coder driven by a gated mix of context-model and
// match-model predictions. It shares nothing with the PPM path; the hybrid
// driver uses it as one more candidate.
//
// Predictions are 12-bit probabilities. The mixer combines up to 8 stretched
// (log-odds) inputs with adaptive weights and squashes the sum back to a
// probability; stretch and squash are precomputed lookup tables, built once
// on first use and immutable afterwards.
package cm

import (
	"math"
	"sync"
)

// maxDecodedSize rejects frames whose declared length is implausible.
const maxDecodedSize = 100 * 1024 * 1024

var (
	tableOnce  sync.Once
	stretchTbl [4096]int32
	squashTbl  [8192]int32
)

func initTables() {
	for i := 0; i < 4096; i++ {
		p := (float64(i) + 0.5) / 4096.0
		stretchTbl[i] = int32(512.0 * math.Log(p/(1.0-p)))
	}
	for i := 0; i < 8192; i++ {
		x := float64(i-4096) / 512.0
		v := int32(4096.0 / (1.0 + math.Exp(-x)))
		if v < 1 {
			v = 1
		}
		if v > 4095 {
			v = 4095
		}
		squashTbl[i] = v
	}
}

func stretch(p int32) int32 {
	if p < 0 {
		p = 0
	}
	if p > 4095 {
		p = 4095
	}

	return stretchTbl[p]
}

func squash(x int32) int32 {
	x += 4096
	if x < 0 {
		x = 0
	}
	if x > 8191 {
		x = 8191
	}

	return squashTbl[x]
}

// stateTable packs (n0, n1) bit counters into two nibbles of a state byte and
// precomputes the probability map and the transition on each bit.
type stateTable struct {
	nextState [512]uint8
	stateMap  [256]uint8
}

var st = newStateTable()

func newStateTable() *stateTable {
	t := &stateTable{}
	for i := 0; i < 256; i++ {
		n0 := (i >> 4) & 15
		n1 := i & 15

		den := n0 + n1
		if den < 1 {
			den = 1
		}
		t.stateMap[i] = uint8(n1 * 255 / den)

		newN0 := n0 + 1
		if newN0 > 15 {
			newN0 = 15
		}
		adjN1 := n1
		if newN0+n1 > 15 {
			adjN1 = n1 * 14 / 15
		}
		t.nextState[i*2] = uint8(newN0<<4 | adjN1)

		newN1 := n1 + 1
		if newN1 > 15 {
			newN1 = 15
		}
		adjN0 := n0
		if n0+newN1 > 15 {
			adjN0 = n0 * 14 / 15
		}
		t.nextState[i*2+1] = uint8(adjN0<<4 | newN1)
	}

	return t
}

// contextModel maps a hashed context to a counter state.
type contextModel struct {
	states []uint8
	mask   uint32
}

func newContextModel(bits uint) *contextModel {
	return &contextModel{
		states: make([]uint8, 1<<bits),
		mask:   1<<bits - 1,
	}
}

func (m *contextModel) predict(ctx uint32) int32 {
	return int32(st.stateMap[m.states[ctx&m.mask]]) * 16
}

func (m *contextModel) update(ctx uint32, bit int32) {
	s := &m.states[ctx&m.mask]
	*s = st.nextState[int32(*s)*2+bit]
}

// matchModel predicts the next bit from the byte that followed the last
// occurrence of the current 8-byte context, with confidence growing on
// consecutive correct bits.
type matchModel struct {
	hashTable    []uint32
	history      []uint8
	histPos      int
	matchLen     int
	matchPos     int
	predictedBit int32
	confidence   int32
}

func newMatchModel() *matchModel {
	return &matchModel{
		hashTable: make([]uint32, 1<<18),
		history:   make([]uint8, 1<<20),
	}
}

func (m *matchModel) update(bitCtx uint32, bit int32, byteCtx uint8) {
	if bitCtx&0xFF == 1 {
		m.history[m.histPos%len(m.history)] = byteCtx
		m.histPos++
	}

	if m.matchLen > 0 {
		if bit == m.predictedBit {
			if m.confidence < 7 {
				m.confidence++
			}
		} else {
			m.matchLen = 0
			m.confidence = 0
		}
	}

	if bitCtx&0xFF == 1 && m.histPos > 8 {
		var h uint32
		for i := 0; i < 8; i++ {
			h = h*257 + uint32(m.history[(m.histPos-8+i)%len(m.history)])
		}
		h &= uint32(len(m.hashTable) - 1)

		if m.matchLen == 0 {
			prev := int(m.hashTable[h])
			if prev > 0 && prev < m.histPos-8 {
				valid := true
				for i := 0; i < 8 && valid; i++ {
					if m.history[(prev+i)%len(m.history)] !=
						m.history[(m.histPos-8+i)%len(m.history)] {
						valid = false
					}
				}
				if valid {
					m.matchPos = prev + 8
					m.matchLen = 1
					m.confidence = 1
				}
			}
		}

		m.hashTable[h] = uint32(m.histPos - 8)
	}
}

func (m *matchModel) predict(bitCtx uint32) int32 {
	if m.matchLen == 0 {
		return 2048
	}

	predByte := m.history[m.matchPos%len(m.history)]
	// bitCtx carries a leading 1 above the bits seen so far in this byte.
	bitPos := int32(7)
	for c := bitCtx & 0xFF; c > 1; c >>= 1 {
		bitPos--
	}
	if bitPos < 0 || bitPos > 7 {
		return 2048
	}

	m.predictedBit = int32(predByte>>uint(bitPos)) & 1

	if m.predictedBit != 0 {
		return 4095 - (512 >> uint(m.confidence))
	}

	return 512 >> uint(m.confidence)
}

func (m *matchModel) byteDone() {
	if m.matchLen > 0 {
		m.matchPos++
		m.matchLen++
	}
}

// mixer combines the stretched predictions with adaptive weights, updated by
// bit-error gradient and clamped.
type mixer struct {
	inputs  [8]int32
	weights [8]int32
	n       int
	pr      int32
}

func newMixer() *mixer {
	m := &mixer{pr: 2048}
	for i := range m.weights {
		m.weights[i] = 256
	}

	return m
}

func (m *mixer) add(p int32) {
	if m.n < len(m.inputs) {
		if p < 1 {
			p = 1
		}
		if p > 4095 {
			p = 4095
		}
		m.inputs[m.n] = stretch(p)
		m.n++
	}
}

func (m *mixer) mix() int32 {
	if m.n == 0 {
		return 2048
	}

	var sum, wSum int64
	for i := 0; i < m.n; i++ {
		sum += int64(m.inputs[i]) * int64(m.weights[i])
		wSum += int64(m.weights[i])
	}

	if wSum > 0 {
		m.pr = squash(int32(sum / wSum))
	} else {
		m.pr = squash(0)
	}
	m.n = 0

	return m.pr
}

func (m *mixer) update(bit int32) {
	err := (bit<<12 - m.pr) * 7
	for i := range m.weights {
		m.weights[i] += (m.inputs[i] * err) >> 16
		if m.weights[i] < 1 {
			m.weights[i] = 1
		}
		if m.weights[i] > 65535 {
			m.weights[i] = 65535
		}
	}
}

// bitEncoder is the binary arithmetic coder. It splits [low, high] at the
// probability-weighted midpoint and renormalizes a byte at a time.
type bitEncoder struct {
	low  uint32
	high uint32
	out  []byte
}

func (e *bitEncoder) encode(bit, p int32) {
	mid := e.low + uint32(uint64(e.high-e.low)*uint64(p)>>12)
	// p is the probability of a 1, which takes the lower part of the range.
	if bit != 0 {
		e.high = mid
	} else {
		e.low = mid + 1
	}

	for (e.low^e.high) < 1<<24 {
		e.out = append(e.out, byte(e.low>>24))
		e.low <<= 8
		e.high = e.high<<8 | 0xFF
	}
}

func (e *bitEncoder) flush() {
	e.out = append(e.out,
		byte(e.low>>24), byte(e.low>>16), byte(e.low>>8), byte(e.low))
}

type bitDecoder struct {
	low  uint32
	high uint32
	code uint32
	in   []byte
	pos  int
}

func newBitDecoder(in []byte) *bitDecoder {
	d := &bitDecoder{high: 0xFFFFFFFF, in: in}
	for i := 0; i < 4; i++ {
		d.code = d.code<<8 | uint32(d.next())
	}

	return d
}

func (d *bitDecoder) next() byte {
	if d.pos >= len(d.in) {
		return 0
	}
	b := d.in[d.pos]
	d.pos++

	return b
}

func (d *bitDecoder) decode(p int32) int32 {
	mid := d.low + uint32(uint64(d.high-d.low)*uint64(p)>>12)
	var bit int32
	if d.code <= mid {
		bit = 1
		d.high = mid
	} else {
		d.low = mid + 1
	}

	for (d.low^d.high) < 1<<24 {
		d.low <<= 8
		d.high = d.high<<8 | 0xFF
		d.code = d.code<<8 | uint32(d.next())
	}

	return bit
}

// models bundles the prediction state shared by both coder directions.
type models struct {
	cm  [5]*contextModel
	mm  *matchModel
	mix *mixer

	ctx1, ctx2, ctx3, ctx4 uint32
}

func newModels() *models {
	return &models{
		cm: [5]*contextModel{
			newContextModel(8),
			newContextModel(16),
			newContextModel(20),
			newContextModel(22),
			newContextModel(24),
		},
		mm:  newMatchModel(),
		mix: newMixer(),
	}
}

func (s *models) contexts(bitCtx uint32) [5]uint32 {
	return [5]uint32{
		bitCtx,
		s.ctx1<<8 | bitCtx,
		(s.ctx2&0xFFF)<<8 | bitCtx,
		(s.ctx3&0x3FFF)<<8 | bitCtx,
		(s.ctx4&0xFFFF)<<8 | bitCtx,
	}
}

func (s *models) predict(ctxs [5]uint32, bitCtx uint32) int32 {
	for i, c := range ctxs {
		s.mix.add(s.cm[i].predict(c))
	}
	s.mix.add(s.mm.predict(bitCtx))
	s.mix.add(2048)
	s.mix.add(2048)

	return s.mix.mix()
}

func (s *models) learn(ctxs [5]uint32, bitCtx uint32, bit int32) {
	for i, c := range ctxs {
		s.cm[i].update(c, bit)
	}
	s.mm.update(bitCtx, bit, uint8(s.ctx1))
	s.mix.update(bit)
}

func (s *models) nextByte(b uint8) {
	s.mm.byteDone()
	s.ctx4 = s.ctx4<<8 | s.ctx3>>24
	s.ctx3 = s.ctx3<<8 | s.ctx2>>16
	s.ctx2 = s.ctx2<<8 | s.ctx1>>8
	s.ctx1 = s.ctx1<<8 | uint32(b)
}

// Encode compresses in. The frame is a 4-byte big-endian original length
// followed by the coded bits.
func Encode(in []byte) []byte {
	if len(in) == 0 {
		return nil
	}
	tableOnce.Do(initTables)

	out := make([]byte, 0, len(in))
	size := uint32(len(in))
	out = append(out, byte(size>>24), byte(size>>16), byte(size>>8), byte(size))

	enc := &bitEncoder{high: 0xFFFFFFFF, out: out}
	s := newModels()

	for _, b := range in {
		bitCtx := uint32(1)
		for i := 7; i >= 0; i-- {
			bit := int32(b>>uint(i)) & 1

			ctxs := s.contexts(bitCtx)
			p := s.predict(ctxs, bitCtx)
			enc.encode(bit, p)
			s.learn(ctxs, bitCtx, bit)

			bitCtx = bitCtx<<1 | uint32(bit)
		}
		s.nextByte(b)
	}

	enc.flush()

	return enc.out
}

// Decode reverses Encode. Frames shorter than the length prefix or declaring
// more than 100MiB yield an empty result.
func Decode(in []byte) []byte {
	if len(in) < 4 {
		return nil
	}
	tableOnce.Do(initTables)

	size := uint32(in[0])<<24 | uint32(in[1])<<16 | uint32(in[2])<<8 | uint32(in[3])
	if size > maxDecodedSize {
		return nil
	}

	dec := newBitDecoder(in[4:])
	s := newModels()
	out := make([]byte, 0, size)

	for n := uint32(0); n < size; n++ {
		bitCtx := uint32(1)
		var b uint8
		for i := 7; i >= 0; i-- {
			ctxs := s.contexts(bitCtx)
			p := s.predict(ctxs, bitCtx)
			bit := dec.decode(p)
			s.learn(ctxs, bitCtx, bit)

			b = b<<1 | uint8(bit)
			bitCtx = bitCtx<<1 | uint32(bit)
		}
		s.nextByte(b)
		out = append(out, b)
	}

	return out
}
