package kcomp

import (
	"github.com/khaledalam/kcomp/bwt"
	"github.com/khaledalam/kcomp/cm"
	"github.com/khaledalam/kcomp/dict"
	"github.com/khaledalam/kcomp/format"
	"github.com/khaledalam/kcomp/internal/pool"
	"github.com/khaledalam/kcomp/lz"
	"github.com/khaledalam/kcomp/ppm"
	"github.com/khaledalam/kcomp/transform"
)

// Size gates for the expensive candidates. These are part of the format's
// behavior: changing them changes which pipelines compete and therefore the
// emitted mode tag.
const (
	maxBWTSize    = 1 << 20    // BWT-bearing pipelines
	maxLZXSize    = 1 << 18    // suffix-array LZX
	maxCMSize     = 512 * 1024 // context mixing
	maxLZOptSize  = 512 * 1024 // LZOpt pipelines
	maxDictSize   = 65535      // static-dictionary pipelines
	minRecordSize = 1024       // record interleave lower bound
	maxRecordSize = 1 << 20    // record interleave upper bound

	recordWidth = 512
)

// selector accumulates the smallest candidate frame seen so far. Candidates
// are compared by size only; on ties the earlier pipeline wins.
type selector struct {
	in       []byte
	best     []byte
	bestMode format.Mode
}

func newSelector(in []byte) *selector {
	return &selector{in: in}
}

// try keeps cand if it beats the current best. The candidate bytes are
// copied, so callers may reuse their buffers.
func (s *selector) try(cand []byte, mode format.Mode) {
	if len(s.best) == 0 || len(cand) < len(s.best) {
		s.best = append(s.best[:0], cand...)
		s.bestMode = mode
	}
}

// tryBWT composes the 4-byte big-endian primary index with the entropy-coded
// MTF output in a pooled scratch buffer.
func (s *selector) tryBWT(data []byte, order int, mode format.Mode) {
	transformed, primary := bwt.Encode(data)
	mtf := bwt.MTFEncode(transformed)
	payload := ppm.Compress(mtf, order)

	bb := pool.GetFrameBuffer()
	bb.MustWrite([]byte{byte(primary >> 24), byte(primary >> 16), byte(primary >> 8), byte(primary)})
	bb.MustWrite(payload)
	s.try(bb.Bytes(), mode)
	pool.PutFrameBuffer(bb)
}

// run walks the candidate catalog in its fixed order.
func (s *selector) run() {
	in := s.in
	n := len(in)

	s.try(ppm.Compress(in, 5), format.ModePPM5)
	s.try(ppm.Compress(in, 6), format.ModePPM6)

	// LZ77 is cheap, always in the running.
	lz77Data := lz.LZ77Encode(in)
	s.try(ppm.Compress(lz77Data, 3), format.ModeLZ77PPM3)
	s.try(ppm.Compress(lz77Data, 5), format.ModeLZ77PPM5)
	s.try(ppm.Compress(lz77Data, 6), format.ModeLZ77PPM6)

	if n <= maxLZOptSize {
		lzoptData := lz.LZOptEncode(in)
		s.try(ppm.Compress(lzoptData, 3), format.ModeLZOptPPM3)
		s.try(ppm.Compress(lzoptData, 5), format.ModeLZOptPPM5)
		s.try(ppm.Compress(lzoptData, 6), format.ModeLZOptPPM6)
	}

	if n <= maxBWTSize {
		transformed, primary := bwt.Encode(in)
		mtf := bwt.MTFEncode(transformed)
		for _, c := range []struct {
			order int
			mode  format.Mode
		}{
			{3, format.ModeBWTPPM3},
			{5, format.ModeBWTPPM5},
			{6, format.ModeBWTPPM6},
		} {
			payload := ppm.Compress(mtf, c.order)
			bb := pool.GetFrameBuffer()
			bb.MustWrite([]byte{byte(primary >> 24), byte(primary >> 16), byte(primary >> 8), byte(primary)})
			bb.MustWrite(payload)
			s.try(bb.Bytes(), c.mode)
			pool.PutFrameBuffer(bb)
		}
	}

	if n <= maxLZXSize {
		lzxData := lz.LZXEncode(in)
		s.try(ppm.Compress(lzxData, 5), format.ModeLZXPPM5)
		s.try(ppm.Compress(lzxData, 6), format.ModeLZXPPM6)
	}

	if n <= maxCMSize {
		s.try(cm.Encode(in), format.ModeCM)
	}

	rleData := transform.RLEEncode(in)
	s.try(ppm.Compress(rleData, 5), format.ModeRLEPPM5)
	s.try(ppm.Compress(rleData, 6), format.ModeRLEPPM6)

	if n <= maxBWTSize {
		s.tryBWT(lz.LZ77Encode(in), 5, format.ModeLZ77BWTPPM5)
	}

	deltaData := transform.DeltaEncode(in)
	s.try(ppm.Compress(deltaData, 5), format.ModeDeltaPPM5)
	s.try(ppm.Compress(transform.RLEEncode(deltaData), 5), format.ModeDeltaRLEPPM5)

	// Word tokenization only competes when it shrinks its input.
	wordData := transform.WordEncode(in)
	if len(wordData) < n {
		s.try(ppm.Compress(wordData, 5), format.ModeWordPPM5)
		s.try(ppm.Compress(wordData, 6), format.ModeWordPPM6)

		wordRLE := transform.RLEEncode(wordData)
		s.try(ppm.Compress(wordRLE, 5), format.ModeWordRLEPPM5)
		s.try(ppm.Compress(wordRLE, 6), format.ModeWordRLEPPM6)

		wordLZ := lz.LZ77Encode(wordData)
		s.try(ppm.Compress(wordLZ, 5), format.ModeWordLZ77PPM5)
		s.try(ppm.Compress(wordLZ, 6), format.ModeWordLZ77PPM6)
	}

	lzWord := transform.WordEncode(lz77Data)
	if len(lzWord) < len(lz77Data) {
		s.try(ppm.Compress(lzWord, 5), format.ModeLZ77WordPPM5)
		s.try(ppm.Compress(lzWord, 6), format.ModeLZ77WordPPM6)
	}

	if n <= maxBWTSize {
		s.tryBWT(deltaData, 5, format.ModeDeltaBWTPPM5)
	}

	s.try(ppm.Compress(lz.LZ77Encode(rleData), 5), format.ModeRLELZ77PPM5)
	s.try(ppm.Compress(transform.RLEEncode(lz77Data), 5), format.ModeLZ77RLEPPM5)

	if n <= maxBWTSize {
		s.tryBWT(rleData, 5, format.ModeRLEBWTPPM5)
	}

	if n <= maxLZOptSize {
		s.try(ppm.Compress(transform.RLEEncode(lz.LZOptEncode(in)), 5), format.ModeLZOptRLEPPM5)
		s.try(ppm.Compress(lz.LZOptEncode(rleData), 5), format.ModeRLELZOptPPM5)
	}

	if n >= minRecordSize && n <= maxRecordSize {
		rec := transform.RecordInterleave(in, recordWidth)
		s.try(ppm.Compress(rec, 5), format.ModeRecordPPM5)
		s.try(ppm.Compress(transform.RLEEncode(rec), 5), format.ModeRecordRLEPPM5)
	}

	if n <= maxDictSize {
		dictData := dict.Encode(in)
		s.try(ppm.Compress(dictData, 5), format.ModeDictPPM5)
		s.try(ppm.Compress(dictData, 6), format.ModeDictPPM6)

		if len(wordData) < n {
			s.try(ppm.Compress(dict.Encode(wordData), 6), format.ModeWordDictPPM6)
		}
	}

	sparseData := transform.SparseEncode(in)
	if len(sparseData) < n {
		s.try(ppm.Compress(sparseData, 5), format.ModeSparsePPM5)
		s.try(ppm.Compress(sparseData, 6), format.ModeSparsePPM6)

		sparseWord := transform.WordEncode(sparseData)
		if len(sparseWord) < len(sparseData) {
			s.try(ppm.Compress(sparseWord, 6), format.ModeSparseWordPPM6)
		}
	}

	lzmaData := lz.LZMAEncode(in)
	s.try(ppm.Compress(lzmaData, 5), format.ModeLZMAPPM5)
	s.try(ppm.Compress(lzmaData, 6), format.ModeLZMAPPM6)
	if len(lzmaData) <= maxBWTSize {
		s.tryBWT(lzmaData, 5, format.ModeLZMABWTPPM5)
	}

	if len(wordData) < n {
		wordLZMA := lz.LZMAEncode(wordData)
		s.try(ppm.Compress(wordLZMA, 5), format.ModeWordLZMAPPM5)
		s.try(ppm.Compress(wordLZMA, 6), format.ModeWordLZMAPPM6)
	}

	if n <= maxDictSize {
		dictLZMA := lz.LZMAEncode(dict.Encode(in))
		s.try(ppm.Compress(dictLZMA, 5), format.ModeDictLZMAPPM5)
		s.try(ppm.Compress(dictLZMA, 6), format.ModeDictLZMAPPM6)
	}

	if len(rleData) < n {
		rleLZMA := lz.LZMAEncode(rleData)
		s.try(ppm.Compress(rleLZMA, 5), format.ModeRLELZMAPPM5)
		s.try(ppm.Compress(rleLZMA, 6), format.ModeRLELZMAPPM6)
	}
}

// splitBWT strips the 4-byte big-endian primary index from a BWT payload.
func splitBWT(payload []byte) ([]byte, uint32, bool) {
	if len(payload) < 4 {
		return nil, 0, false
	}
	primary := uint32(payload[0])<<24 | uint32(payload[1])<<16 |
		uint32(payload[2])<<8 | uint32(payload[3])

	return payload[4:], primary, true
}

func decodeBWT(payload []byte, order int) []byte {
	rest, primary, ok := splitBWT(payload)
	if !ok {
		return nil
	}
	mtf := ppm.Decompress(rest, order)

	return bwt.Decode(bwt.MTFDecode(mtf), primary)
}

// decodeFrame dispatches a payload to the inverse of the pipeline named by
// the mode tag.
func decodeFrame(mode format.Mode, payload []byte) []byte {
	switch mode {
	case format.ModePPM5:
		return ppm.Decompress(payload, 5)
	case format.ModeLZ77PPM3:
		return lz.LZ77Decode(ppm.Decompress(payload, 3))
	case format.ModeLZ77PPM5:
		return lz.LZ77Decode(ppm.Decompress(payload, 5))
	case format.ModePPM6:
		return ppm.Decompress(payload, 6)
	case format.ModeLZ77PPM6:
		return lz.LZ77Decode(ppm.Decompress(payload, 6))
	case format.ModeLZOptPPM3:
		return lz.LZOptDecode(ppm.Decompress(payload, 3))
	case format.ModeLZOptPPM5:
		return lz.LZOptDecode(ppm.Decompress(payload, 5))
	case format.ModeLZOptPPM6:
		return lz.LZOptDecode(ppm.Decompress(payload, 6))
	case format.ModeBWTPPM3:
		return decodeBWT(payload, 3)
	case format.ModeBWTPPM5:
		return decodeBWT(payload, 5)
	case format.ModeLZXPPM5:
		return lz.LZXDecode(ppm.Decompress(payload, 5))
	case format.ModeLZXPPM6:
		return lz.LZXDecode(ppm.Decompress(payload, 6))
	case format.ModeCM:
		return cm.Decode(payload)
	case format.ModeBWTPPM6:
		return decodeBWT(payload, 6)
	case format.ModeRLEPPM5:
		return transform.RLEDecode(ppm.Decompress(payload, 5))
	case format.ModeRLEPPM6:
		return transform.RLEDecode(ppm.Decompress(payload, 6))
	case format.ModeLZ77BWTPPM5:
		return lz.LZ77Decode(decodeBWT(payload, 5))
	case format.ModeDeltaPPM5:
		return transform.DeltaDecode(ppm.Decompress(payload, 5))
	case format.ModeDeltaRLEPPM5:
		return transform.DeltaDecode(transform.RLEDecode(ppm.Decompress(payload, 5)))
	case format.ModePattern:
		return transform.PatternDecode(payload)
	case format.ModeWordPPM5:
		return transform.WordDecode(ppm.Decompress(payload, 5))
	case format.ModeWordPPM6:
		return transform.WordDecode(ppm.Decompress(payload, 6))
	case format.ModeDeltaBWTPPM5:
		return transform.DeltaDecode(decodeBWT(payload, 5))
	case format.ModeRLELZ77PPM5:
		return transform.RLEDecode(lz.LZ77Decode(ppm.Decompress(payload, 5)))
	case format.ModeLZ77RLEPPM5:
		return lz.LZ77Decode(transform.RLEDecode(ppm.Decompress(payload, 5)))
	case format.ModeRLEBWTPPM5:
		return transform.RLEDecode(decodeBWT(payload, 5))
	case format.ModeLZOptRLEPPM5:
		return lz.LZOptDecode(transform.RLEDecode(ppm.Decompress(payload, 5)))
	case format.ModeRLELZOptPPM5:
		return transform.RLEDecode(lz.LZOptDecode(ppm.Decompress(payload, 5)))
	case format.ModeRecordPPM5:
		return transform.RecordDeinterleave(ppm.Decompress(payload, 5))
	case format.ModeRecordRLEPPM5:
		return transform.RecordDeinterleave(transform.RLEDecode(ppm.Decompress(payload, 5)))
	case format.ModeWordRLEPPM5:
		return transform.WordDecode(transform.RLEDecode(ppm.Decompress(payload, 5)))
	case format.ModeWordRLEPPM6:
		return transform.WordDecode(transform.RLEDecode(ppm.Decompress(payload, 6)))
	case format.ModeDictPPM5:
		return dict.Decode(ppm.Decompress(payload, 5))
	case format.ModeDictPPM6:
		return dict.Decode(ppm.Decompress(payload, 6))
	case format.ModeWordDictPPM6:
		return transform.WordDecode(dict.Decode(ppm.Decompress(payload, 6)))
	case format.ModeWordLZ77PPM5:
		return transform.WordDecode(lz.LZ77Decode(ppm.Decompress(payload, 5)))
	case format.ModeWordLZ77PPM6:
		return transform.WordDecode(lz.LZ77Decode(ppm.Decompress(payload, 6)))
	case format.ModeLZ77WordPPM5:
		return lz.LZ77Decode(transform.WordDecode(ppm.Decompress(payload, 5)))
	case format.ModeLZ77WordPPM6:
		return lz.LZ77Decode(transform.WordDecode(ppm.Decompress(payload, 6)))
	case format.ModeSparsePPM5:
		return transform.SparseDecode(ppm.Decompress(payload, 5))
	case format.ModeSparsePPM6:
		return transform.SparseDecode(ppm.Decompress(payload, 6))
	case format.ModeSparseWordPPM6:
		return transform.SparseDecode(transform.WordDecode(ppm.Decompress(payload, 6)))
	case format.ModeLZMAPPM5:
		return lz.LZMADecode(ppm.Decompress(payload, 5))
	case format.ModeLZMAPPM6:
		return lz.LZMADecode(ppm.Decompress(payload, 6))
	case format.ModeLZMABWTPPM5:
		return lz.LZMADecode(decodeBWT(payload, 5))
	case format.ModeWordLZMAPPM5:
		return transform.WordDecode(lz.LZMADecode(ppm.Decompress(payload, 5)))
	case format.ModeWordLZMAPPM6:
		return transform.WordDecode(lz.LZMADecode(ppm.Decompress(payload, 6)))
	case format.ModeDictLZMAPPM5:
		return dict.Decode(lz.LZMADecode(ppm.Decompress(payload, 5)))
	case format.ModeDictLZMAPPM6:
		return dict.Decode(lz.LZMADecode(ppm.Decompress(payload, 6)))
	case format.ModeRLELZMAPPM5:
		return transform.RLEDecode(lz.LZMADecode(ppm.Decompress(payload, 5)))
	case format.ModeRLELZMAPPM6:
		return transform.RLEDecode(lz.LZMADecode(ppm.Decompress(payload, 6)))
	case format.ModeStoreRaw:
		out := make([]byte, len(payload))
		copy(out, payload)

		return out
	default:
		return ppm.Decompress(payload, 5)
	}
}
