package lexicode

import (
	"fmt"

	"github.com/phiryll/lexicode/internal/ordfloat"
)

// numberEncoding encodes any Go numeric value as a float64 via the
// ordfloat ordered-byte-string primitive. Integer types are widened to
// float64 first; no distinction between integer and float inputs is
// preserved, and Decode always produces a float64.
type numberEncoding struct{}

func (numberEncoding) Prefix() string { return "e" }

func (numberEncoding) Match(v any) bool {
	_, ok := asFloat64(v)
	return ok
}

func (numberEncoding) Encode(buf []byte, v any, _ *Codec) ([]byte, error) {
	x, ok := asFloat64(v)
	if !ok {
		return nil, UnsupportedValueError{Value: v}
	}
	body, err := ordfloat.Encode(x)
	if err != nil {
		return nil, fmt.Errorf("lexicode: encoding number %v: %w", v, err)
	}
	return append(buf, body...), nil
}

func (numberEncoding) Decode(body []byte, _ *Codec, _ int) (any, error) {
	if len(body) != ordfloat.Size {
		return nil, MalformedBodyError{Encoding: "Number", Body: body}
	}
	return ordfloat.Decode(body), nil
}

// Compare goes through ordfloat.Compare rather than a direct numeric
// comparison: Go's float64 == and < treat +0.0 and -0.0 as equal, but
// ordfloat's byte encoding doesn't, and Compare must agree with it.
func (numberEncoding) Compare(a, b any, _ *Codec) (int, error) {
	av, _ := asFloat64(a)
	bv, _ := asFloat64(b)
	return ordfloat.Compare(av, bv), nil
}

// asFloat64 widens any of Go's builtin numeric types to float64.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
