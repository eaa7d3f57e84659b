package format

type (
	// Mode is the leading tag byte of a compressed frame. It identifies the
	// pipeline (preprocessors + entropy coder) that produced the payload.
	Mode uint8

	// CompressionType identifies a baseline codec used by the bench harness.
	CompressionType uint8
)

const (
	ModePPM5           Mode = 0  // PPM order-5, no preprocessing.
	ModeLZ77PPM3       Mode = 1  // LZ77 then PPM order-3.
	ModeLZ77PPM5       Mode = 2  // LZ77 then PPM order-5.
	ModePPM6           Mode = 3  // PPM order-6, no preprocessing.
	ModeLZ77PPM6       Mode = 4  // LZ77 then PPM order-6.
	ModeLZOptPPM3      Mode = 5  // LZOpt then PPM order-3.
	ModeLZOptPPM5      Mode = 6  // LZOpt then PPM order-5.
	ModeLZOptPPM6      Mode = 7  // LZOpt then PPM order-6.
	ModeBWTPPM3        Mode = 8  // BWT+MTF then PPM order-3.
	ModeBWTPPM5        Mode = 9  // BWT+MTF then PPM order-5.
	ModeLZXPPM5        Mode = 10 // LZX then PPM order-5.
	ModeLZXPPM6        Mode = 11 // LZX then PPM order-6.
	ModeCM             Mode = 12 // Context-mixing codec, standalone.
	ModeBWTPPM6        Mode = 13 // BWT+MTF then PPM order-6.
	ModeRLEPPM5        Mode = 14 // RLE then PPM order-5.
	ModeRLEPPM6        Mode = 15 // RLE then PPM order-6.
	ModeLZ77BWTPPM5    Mode = 16 // LZ77 then BWT+MTF then PPM order-5.
	ModeDeltaPPM5      Mode = 17 // Delta then PPM order-5.
	ModeDeltaRLEPPM5   Mode = 18 // Delta then RLE then PPM order-5.
	ModePattern        Mode = 19 // Pattern repeat. Reserved: decoded, never emitted.
	ModeWordPPM5       Mode = 20 // Word tokenizer then PPM order-5.
	ModeWordPPM6       Mode = 21 // Word tokenizer then PPM order-6.
	ModeDeltaBWTPPM5   Mode = 22 // Delta then BWT+MTF then PPM order-5.
	ModeRLELZ77PPM5    Mode = 23 // RLE then LZ77 then PPM order-5.
	ModeLZ77RLEPPM5    Mode = 24 // LZ77 then RLE then PPM order-5.
	ModeRLEBWTPPM5     Mode = 25 // RLE then BWT+MTF then PPM order-5.
	ModeLZOptRLEPPM5   Mode = 26 // LZOpt then RLE then PPM order-5.
	ModeRLELZOptPPM5   Mode = 27 // RLE then LZOpt then PPM order-5.
	ModeRecordPPM5     Mode = 28 // Record interleave (512) then PPM order-5.
	ModeRecordRLEPPM5  Mode = 29 // Record interleave (512) then RLE then PPM order-5.
	ModeWordRLEPPM5    Mode = 30 // Word tokenizer then RLE then PPM order-5.
	ModeWordRLEPPM6    Mode = 31 // Word tokenizer then RLE then PPM order-6.
	ModeDictPPM5       Mode = 32 // Static-dict LZ then PPM order-5.
	ModeDictPPM6       Mode = 33 // Static-dict LZ then PPM order-6.
	ModeWordDictPPM6   Mode = 34 // Word tokenizer then static-dict LZ then PPM order-6.
	ModeWordLZ77PPM5   Mode = 35 // Word tokenizer then LZ77 then PPM order-5.
	ModeWordLZ77PPM6   Mode = 36 // Word tokenizer then LZ77 then PPM order-6.
	ModeLZ77WordPPM5   Mode = 37 // LZ77 then word tokenizer then PPM order-5.
	ModeLZ77WordPPM6   Mode = 38 // LZ77 then word tokenizer then PPM order-6.
	ModeSparsePPM5     Mode = 39 // Sparse-zero then PPM order-5.
	ModeSparsePPM6     Mode = 40 // Sparse-zero then PPM order-6.
	ModeSparseWordPPM6 Mode = 41 // Sparse-zero then word tokenizer then PPM order-6.
	ModeLZMAPPM5       Mode = 42 // LZMA-style then PPM order-5.
	ModeLZMAPPM6       Mode = 43 // LZMA-style then PPM order-6.
	ModeLZMABWTPPM5    Mode = 44 // LZMA-style then BWT+MTF then PPM order-5.
	ModeWordLZMAPPM5   Mode = 45 // Word tokenizer then LZMA-style then PPM order-5.
	ModeWordLZMAPPM6   Mode = 46 // Word tokenizer then LZMA-style then PPM order-6.
	ModeDictLZMAPPM5   Mode = 47 // Static-dict LZ then LZMA-style then PPM order-5.
	ModeDictLZMAPPM6   Mode = 48 // Static-dict LZ then LZMA-style then PPM order-6.
	ModeRLELZMAPPM5    Mode = 49 // RLE then LZMA-style then PPM order-5.
	ModeRLELZMAPPM6    Mode = 50 // RLE then LZMA-style then PPM order-6.

	ModeStoreRaw Mode = 255 // Store raw: payload is the literal input.
)

var modeNames = map[Mode]string{
	ModePPM5:           "PPM5",
	ModeLZ77PPM3:       "LZ77+PPM3",
	ModeLZ77PPM5:       "LZ77+PPM5",
	ModePPM6:           "PPM6",
	ModeLZ77PPM6:       "LZ77+PPM6",
	ModeLZOptPPM3:      "LZOpt+PPM3",
	ModeLZOptPPM5:      "LZOpt+PPM5",
	ModeLZOptPPM6:      "LZOpt+PPM6",
	ModeBWTPPM3:        "BWT+MTF+PPM3",
	ModeBWTPPM5:        "BWT+MTF+PPM5",
	ModeLZXPPM5:        "LZX+PPM5",
	ModeLZXPPM6:        "LZX+PPM6",
	ModeCM:             "CM",
	ModeBWTPPM6:        "BWT+MTF+PPM6",
	ModeRLEPPM5:        "RLE+PPM5",
	ModeRLEPPM6:        "RLE+PPM6",
	ModeLZ77BWTPPM5:    "LZ77+BWT+MTF+PPM5",
	ModeDeltaPPM5:      "Delta+PPM5",
	ModeDeltaRLEPPM5:   "Delta+RLE+PPM5",
	ModePattern:        "Pattern",
	ModeWordPPM5:       "Word+PPM5",
	ModeWordPPM6:       "Word+PPM6",
	ModeDeltaBWTPPM5:   "Delta+BWT+MTF+PPM5",
	ModeRLELZ77PPM5:    "RLE+LZ77+PPM5",
	ModeLZ77RLEPPM5:    "LZ77+RLE+PPM5",
	ModeRLEBWTPPM5:     "RLE+BWT+MTF+PPM5",
	ModeLZOptRLEPPM5:   "LZOpt+RLE+PPM5",
	ModeRLELZOptPPM5:   "RLE+LZOpt+PPM5",
	ModeRecordPPM5:     "Record+PPM5",
	ModeRecordRLEPPM5:  "Record+RLE+PPM5",
	ModeWordRLEPPM5:    "Word+RLE+PPM5",
	ModeWordRLEPPM6:    "Word+RLE+PPM6",
	ModeDictPPM5:       "Dict+PPM5",
	ModeDictPPM6:       "Dict+PPM6",
	ModeWordDictPPM6:   "Word+Dict+PPM6",
	ModeWordLZ77PPM5:   "Word+LZ77+PPM5",
	ModeWordLZ77PPM6:   "Word+LZ77+PPM6",
	ModeLZ77WordPPM5:   "LZ77+Word+PPM5",
	ModeLZ77WordPPM6:   "LZ77+Word+PPM6",
	ModeSparsePPM5:     "Sparse+PPM5",
	ModeSparsePPM6:     "Sparse+PPM6",
	ModeSparseWordPPM6: "Sparse+Word+PPM6",
	ModeLZMAPPM5:       "LZMA+PPM5",
	ModeLZMAPPM6:       "LZMA+PPM6",
	ModeLZMABWTPPM5:    "LZMA+BWT+MTF+PPM5",
	ModeWordLZMAPPM5:   "Word+LZMA+PPM5",
	ModeWordLZMAPPM6:   "Word+LZMA+PPM6",
	ModeDictLZMAPPM5:   "Dict+LZMA+PPM5",
	ModeDictLZMAPPM6:   "Dict+LZMA+PPM6",
	ModeRLELZMAPPM5:    "RLE+LZMA+PPM5",
	ModeRLELZMAPPM6:    "RLE+LZMA+PPM6",
	ModeStoreRaw:       "StoreRaw",
}

// String names the pipeline in encode order, stages separated by '+'.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return "Unknown"
}

const (
	CompressionNone  CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd  CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2    CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4   CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionKcomp CompressionType = 0x5 // CompressionKcomp represents the kcomp hybrid compressor.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionKcomp:
		return "Kcomp"
	default:
		return "Unknown"
	}
}
