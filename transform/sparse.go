package transform

const (
	sparseEsc      = 0xFF
	sparseMinZeros = 4
	sparseMaxZeros = 65535 + sparseMinZeros
)

// SparseEncode collapses runs of 4 or more zero bytes into
// `0xFF, 0x00, len_hi, len_lo` with len = run-4. A literal 0xFF is doubled.
func SparseEncode(in []byte) []byte {
	out := make([]byte, 0, len(in))

	for i := 0; i < len(in); {
		switch {
		case in[i] == 0:
			run := 1
			for i+run < len(in) && in[i+run] == 0 && run < sparseMaxZeros {
				run++
			}
			if run >= sparseMinZeros {
				n := uint16(run - sparseMinZeros)
				out = append(out, sparseEsc, 0x00, byte(n>>8), byte(n))
			} else {
				for j := 0; j < run; j++ {
					out = append(out, 0x00)
				}
			}
			i += run
		case in[i] == sparseEsc:
			out = append(out, sparseEsc, sparseEsc)
			i++
		default:
			out = append(out, in[i])
			i++
		}
	}

	return out
}

// SparseDecode reverses SparseEncode. Truncated input stops at the cursor end.
func SparseDecode(in []byte) []byte {
	out := make([]byte, 0, len(in)*2)

	for i := 0; i < len(in); {
		if in[i] != sparseEsc {
			out = append(out, in[i])
			i++
			continue
		}

		if i+1 >= len(in) {
			break
		}
		switch in[i+1] {
		case sparseEsc:
			out = append(out, sparseEsc)
			i += 2
		case 0x00:
			if i+3 >= len(in) {
				return out
			}
			run := int(uint16(in[i+2])<<8|uint16(in[i+3])) + sparseMinZeros
			for j := 0; j < run; j++ {
				out = append(out, 0x00)
			}
			i += 4
		default:
			out = append(out, in[i])
			i++
		}
	}

	return out
}
