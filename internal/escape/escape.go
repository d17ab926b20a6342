// Package escape implements the delimiter-and-escape protocol used to make
// a list of independently-encoded, variable-length byte strings
// self-delimiting inside a single buffer, while preserving the
// lexicographical ordering of the original list over the concatenated
// result.
//
// This is the same escaping problem lexy's terminate.go and
// internal/escape.go solve for a single statically-typed Codec[T]; here it's
// generalized to a list of already-encoded, independently-typed elements
// (an array's or object's children), since those can each be a different
// dynamic type.
package escape

// Functions for delimiting elements of a sequence and escaping. These are
// defined in a way that preserves the lexicographical []byte ordering of the
// encoded sequence. For example, the encoding of ["ab", "cde"] needs to be
// less than the encoding of ["abc", "de"], because "ab" is less than "abc".
// The delimiter can't itself be used to escape a delimiter because it leads
// to ambiguities, so there needs to be a distinct escape byte.
//
// This comment explains why 0x00 and 0x01 were chosen for the delimiter and
// escape values. Strings are used in the following examples for clarity,
// with "," and "\" denoting the delimiter and escape bytes. The form of the
// examples is (input []string -> encoded string), with all input characters
// having their natural meaning (no delimiters or escapes).
//
//	A: ["a", "bc"]  -> a,bc
//	B: ["a", ",bc"] -> a,\,bc
//	C: ["a", "\bc"] -> a,\\bc
//	D: ["ab", "c"]  -> ab,c
//	E: ["a,", "bc"] -> a\,,bc
//	F: ["a\", "bc"] -> a\\,bc
//
// B and E are an example of why the delimiter can't be its own escape, the
// encoded strings would both be "a,,,bc".
//
// A, B, and C must all be less than D, E, and F. Therefore "," must be less
// than all other values, including the escape. The delimiter must be 0x00.
//
// Since the delimiter is less than all other values, E must be less than D
// (first element "a," < "ab"), so the encoded value "a\,,bc" must be less
// than "ab,c". Therefore "\" must be less than all other values except the
// delimiter. The escape must be 0x01.
const (
	// Terminator delimits elements of a sequence.
	Terminator byte = 0x00

	// Escape escapes the Terminator and Escape bytes when they appear in an
	// element's own encoding, including the encodings of nested sequences,
	// which are still just data at the level of the enclosing sequence.
	Escape byte = 0x01
)

// AppendFrame escapes element and appends it, followed by a Terminator
// byte, to buf, returning the extended buffer. A zero-length element
// produces a single Terminator byte.
func AppendFrame(buf, element []byte) []byte {
	buf = growBy(buf, len(element))
	for _, b := range element {
		switch b {
		case Terminator:
			buf = append(buf, Escape, Terminator)
		case Escape:
			buf = append(buf, Escape, Escape)
		default:
			buf = append(buf, b)
		}
	}
	return append(buf, Terminator)
}

// AppendAll escapes and frames every element of elements, in order,
// appending the result to buf. An empty elements produces no bytes.
func AppendAll(buf []byte, elements [][]byte) []byte {
	for _, element := range elements {
		buf = AppendFrame(buf, element)
	}
	return buf
}

// ReadFrame scans body for the next unescaped Terminator, returning the
// unescaped bytes of the frame and the remainder of body following the
// terminator. ok is false if body contains no complete frame (a dangling
// escape byte, or no terminator at all), in which case element and rest are
// both nil; callers implementing the lenient malformed-body policy should
// simply stop decoding in that case rather than treat it as fatal.
func ReadFrame(body []byte) (element, rest []byte, ok bool) {
	out := make([]byte, 0, len(body))
	escaped := false
	for i, b := range body {
		if !escaped {
			if b == Terminator {
				return out, body[i+1:], true
			}
			if b == Escape {
				escaped = true
				continue
			}
		}
		escaped = false
		out = append(out, b)
	}
	return nil, nil, false
}

// ReadFrames decodes body into the list of elements it encodes, per
// AppendAll. If body ends with an incomplete trailing frame (a dangling
// escape byte, or any bytes following the last complete frame that do not
// themselves terminate), those trailing bytes are silently discarded; this
// is the documented lenient policy for malformed trailing content.
func ReadFrames(body []byte) [][]byte {
	var elements [][]byte
	for len(body) > 0 {
		element, rest, ok := ReadFrame(body)
		if !ok {
			break
		}
		elements = append(elements, element)
		body = rest
	}
	return elements
}

// growBy ensures that n more bytes can be appended to buf without another
// allocation, returning the possibly-reallocated slice with its original
// length. Ported from lexy's extend helper (lexy.go), itself copied from
// slices.Grow before that was available in the standard library.
func growBy(buf []byte, n int) []byte {
	if n -= cap(buf) - len(buf); n > 0 {
		buf = append(buf[:cap(buf)], make([]byte, n)...)[:len(buf)]
	}
	return buf
}
