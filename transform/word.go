package transform

// wordTable is the static token catalog of the word tokenizer: common English
// words, markup fragments, code keywords and whitespace runs. At most 127
// entries so a token index fits in the high-bit byte range. Both sides must
// use the identical table in the identical order.
var wordTable = []string{
	"the ", "The ", " the ", " and ", " of ", " to ", " in ", " is ",
	" a ", "this ", "for ", "with ", " or ", " be ", " as ", " on ",
	" at ", " by ", " an ", "that ", " it ", " are ", " was ", " not ",
	"  ", "   ", "    ", "\n  ", "\n    ", "\r\n", "\n",
	"</", "/>", "=\"", "\">", "'>", "\":", "\": ", "\",", "\"}", "\"]",
	"return ", "void ", "int ", "if (", "else ", "for (", "while (",
	"function", "class ", "const ", "static ", "public ", "private ",
	"true", "false", "null", "new ", "var ", "let ",
	"http://", "https://", ".com", ".org",
	"ing ", "tion", "ment", "ness",
}

const wordEsc = 0x7F

// WordEncode replaces catalog tokens with single high-bit bytes 0x80|index.
// Plain bytes below 0x80 pass through; bytes at or above 0x80 and the escape
// itself are prefixed with the 0x7F escape.
func WordEncode(in []byte) []byte {
	out := make([]byte, 0, len(in))

	for i := 0; i < len(in); {
		if idx := matchWord(in[i:]); idx >= 0 {
			out = append(out, 0x80|byte(idx))
			i += len(wordTable[idx])
			continue
		}

		if in[i] >= 0x80 || in[i] == wordEsc {
			out = append(out, wordEsc, in[i])
		} else {
			out = append(out, in[i])
		}
		i++
	}

	return out
}

// WordDecode reverses WordEncode by byte range: escaped literal, token index,
// or plain byte.
func WordDecode(in []byte) []byte {
	out := make([]byte, 0, len(in)*2)

	for i := 0; i < len(in); {
		switch {
		case in[i] == wordEsc && i+1 < len(in):
			out = append(out, in[i+1])
			i += 2
		case in[i] >= 0x80:
			idx := int(in[i] & 0x7F)
			if idx < len(wordTable) {
				out = append(out, wordTable[idx]...)
			}
			i++
		default:
			out = append(out, in[i])
			i++
		}
	}

	return out
}

func matchWord(data []byte) int {
	for i, w := range wordTable {
		if len(w) <= len(data) && string(data[:len(w)]) == w {
			return i
		}
	}

	return -1
}
