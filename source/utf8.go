package source

// DecodeRune decodes the UTF-8 codepoint at the start of b using the
// standard 1-4 byte form. Continuation bytes are not validated and
// overlong encodings are not rejected. The combinator core never calls
// it; it stays byte-oriented so checkpoint restore remains O(1).
func DecodeRune(b []byte) (r rune, size int) {
	if len(b) == 0 {
		return 0, 0
	}
	b0 := b[0]
	switch {
	case b0 < 0x80:
		return rune(b0), 1
	case b0&0xE0 == 0xC0:
		if len(b) < 2 {
			return 0xFFFD, 1
		}
		return rune(b0&0x1F)<<6 | rune(b[1]&0x3F), 2
	case b0&0xF0 == 0xE0:
		if len(b) < 3 {
			return 0xFFFD, 1
		}
		return rune(b0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F), 3
	case b0&0xF8 == 0xF0:
		if len(b) < 4 {
			return 0xFFFD, 1
		}
		return rune(b0&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F), 4
	default:
		return 0xFFFD, 1
	}
}
