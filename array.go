package lexicode

import "github.com/phiryll/lexicode/internal/escape"

// arrayEncoding encodes a []any as the escape-and-frame concatenation
// (internal/escape) of each element's own full encoding (prefix byte
// included), so that an encoded Array is itself self-delimiting inside an
// enclosing frame.
type arrayEncoding struct{}

func (arrayEncoding) Prefix() string { return "d" }

func (arrayEncoding) Match(v any) bool {
	_, ok := v.([]any)
	return ok
}

func (arrayEncoding) Encode(buf []byte, v any, codec *Codec) ([]byte, error) {
	elements := v.([]any)
	frames := make([][]byte, len(elements))
	for i, elem := range elements {
		encoded, err := codec.Encode(elem)
		if err != nil {
			return nil, err
		}
		frames[i] = encoded
	}
	return escape.AppendAll(buf, frames), nil
}

func (arrayEncoding) Decode(body []byte, codec *Codec, depth int) (any, error) {
	frames := escape.ReadFrames(body)
	values := make([]any, len(frames))
	for i, frame := range frames {
		value, err := codec.decode(frame, depth)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

// Compare implements component-wise comparison: the first pair of
// elements that differ determines the result; if all common elements are
// equal, the shorter Array is less.
func (arrayEncoding) Compare(a, b any, codec *Codec) (int, error) {
	av, bv := a.([]any), b.([]any)
	n := len(av)
	if len(bv) < n {
		n = len(bv)
	}
	for i := 0; i < n; i++ {
		c, err := codec.Compare(av[i], bv[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return cmpOrdered(len(av), len(bv)), nil
}
