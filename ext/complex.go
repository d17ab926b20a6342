package ext

import (
	"fmt"

	"github.com/phiryll/lexicode"
	"github.com/phiryll/lexicode/internal/ordfloat"
)

// complexEncoding encodes a complex128 as its real part followed by its
// imaginary part, each via internal/ordfloat's fixed-width ordered float64
// encoding, so real part dominates the comparison and imaginary part
// breaks ties — the same component-wise convention arrayEncoding uses for
// tuples. Ported from lexy's complexCodec (complex.go), which composes two
// float64 codecs identically; NaN is rejected by ordfloat.Encode for the
// same reason plain Number values reject it — ordering requires a total
// order, and NaN has none.
type complexEncoding struct{}

// Complex128 returns an Encoding for complex128 values.
func Complex128() lexicode.Encoding { return complexEncoding{} }

func (complexEncoding) Prefix() string { return "l" }

func (complexEncoding) Match(v any) bool {
	_, ok := v.(complex128)
	return ok
}

func (complexEncoding) Encode(buf []byte, v any, _ *lexicode.Codec) ([]byte, error) {
	c := v.(complex128)
	re, err := ordfloat.Encode(real(c))
	if err != nil {
		return nil, fmt.Errorf("ext: encoding complex128 %v: %w", c, err)
	}
	im, err := ordfloat.Encode(imag(c))
	if err != nil {
		return nil, fmt.Errorf("ext: encoding complex128 %v: %w", c, err)
	}
	buf = append(buf, re...)
	buf = append(buf, im...)
	return buf, nil
}

func (complexEncoding) Decode(body []byte, _ *lexicode.Codec, _ int) (any, error) {
	if len(body) != 2*ordfloat.Size {
		return nil, fmt.Errorf("ext: malformed Complex128 body: %x", body)
	}
	re := ordfloat.Decode(body[:ordfloat.Size])
	im := ordfloat.Decode(body[ordfloat.Size:])
	return complex(re, im), nil
}

// Compare goes through ordfloat.Compare, not raw float64 <, for the same
// reason numberEncoding does: +0.0 and -0.0 are == in Go but encode to
// different, ordered bytes, and Compare must agree with Encode.
func (complexEncoding) Compare(a, b any, _ *lexicode.Codec) (int, error) {
	ca, cb := a.(complex128), b.(complex128)
	if c := ordfloat.Compare(real(ca), real(cb)); c != 0 {
		return c, nil
	}
	return ordfloat.Compare(imag(ca), imag(cb)), nil
}
