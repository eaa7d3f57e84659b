package transform

// DeltaEncode replaces each byte with its difference to the previous byte
// modulo 256. The first byte passes through.
func DeltaEncode(in []byte) []byte {
	if len(in) == 0 {
		return nil
	}

	out := make([]byte, len(in))
	out[0] = in[0]
	for i := 1; i < len(in); i++ {
		out[i] = in[i] - in[i-1]
	}

	return out
}

// DeltaDecode reverses DeltaEncode by prefix summation modulo 256.
func DeltaDecode(in []byte) []byte {
	if len(in) == 0 {
		return nil
	}

	out := make([]byte, len(in))
	out[0] = in[0]
	for i := 1; i < len(in); i++ {
		out[i] = out[i-1] + in[i]
	}

	return out
}
