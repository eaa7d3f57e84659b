// Package transform implements the reversible byte-stream preprocessors that
// feed the entropy coders: run-length encoding, delta coding, sparse-zero
// runs, record interleaving, word tokenization and pattern-repeat coding.
// Each transform exposes a pure forward/inverse pair over byte slices.
package transform

const (
	rleEsc    = 0xFF
	rleMinRun = 4
	rleMaxRun = 255 + rleMinRun
)

// RLEEncode collapses runs of 4 or more identical bytes into
// `0xFF, byte, run-4`. A literal 0xFF is doubled. Runs of 0xFF itself are
// emitted as doubled literals: the run form would collide with the doubled
// escape on decode.
func RLEEncode(in []byte) []byte {
	out := make([]byte, 0, len(in))

	for i := 0; i < len(in); {
		b := in[i]
		run := 1
		for i+run < len(in) && in[i+run] == b && run < rleMaxRun {
			run++
		}

		if run >= rleMinRun && b != rleEsc {
			out = append(out, rleEsc, b, byte(run-rleMinRun))
			i += run
			continue
		}

		if b == rleEsc {
			out = append(out, rleEsc, rleEsc)
		} else {
			out = append(out, b)
		}
		i++
	}

	return out
}

// RLEDecode reverses RLEEncode. Truncated input stops at the cursor end.
func RLEDecode(in []byte) []byte {
	out := make([]byte, 0, len(in)*2)

	for i := 0; i < len(in); {
		if in[i] != rleEsc {
			out = append(out, in[i])
			i++
			continue
		}

		if i+1 >= len(in) {
			break
		}
		if in[i+1] == rleEsc {
			out = append(out, rleEsc)
			i += 2
			continue
		}

		if i+2 >= len(in) {
			break
		}
		b := in[i+1]
		n := int(in[i+2]) + rleMinRun
		for j := 0; j < n; j++ {
			out = append(out, b)
		}
		i += 3
	}

	return out
}
