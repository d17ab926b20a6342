package lexicode

// Descending returns a Codec whose Encode negates every byte codec would
// produce, and whose Decode/Compare undo that transform before delegating
// to codec — reversing codec's order without needing a second registry.
// Descending(codec).Compare(a, b) == codec.Compare(b, a) for any a, b.
//
// Ported from lexy's Negate/negateCodec (negate.go). Unlike lexy, which
// must treat non-escaping leaf Codecs and escaping aggregate Codecs
// differently (negateCodec vs. negateEscapeCodec), Descending only ever
// wraps a whole top-level Codec: its output is, by construction, a single
// already-self-delimited value (Array/Object framing is entirely internal
// to codec), so the simpler bit-flip-only transform always applies
// regardless of which variant produced the bytes.
func Descending(codec *Codec) *Codec {
	return &Codec{base: codec}
}

// negateBytes flips every bit of buf in place and returns it.
func negateBytes(buf []byte) []byte {
	for i := range buf {
		buf[i] ^= 0xFF
	}
	return buf
}

// negateCopy returns a negated copy of buf, leaving buf untouched.
func negateCopy(buf []byte) []byte {
	dst := make([]byte, len(buf))
	for i, b := range buf {
		dst[i] = ^b
	}
	return dst
}
