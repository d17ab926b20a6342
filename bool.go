package lexicode

// boolEncoding encodes bool as the literal text "true" or "false". Since
// "f" < "t" byte-wise, false correctly sorts before true.
type boolEncoding struct{}

func (boolEncoding) Prefix() string { return "g" }

func (boolEncoding) Match(v any) bool {
	_, ok := v.(bool)
	return ok
}

func (boolEncoding) Encode(buf []byte, v any, _ *Codec) ([]byte, error) {
	if v.(bool) {
		return append(buf, "true"...), nil
	}
	return append(buf, "false"...), nil
}

func (boolEncoding) Decode(body []byte, _ *Codec, _ int) (any, error) {
	switch string(body) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return nil, MalformedBodyError{Encoding: "Bool", Body: body}
	}
}

func (boolEncoding) Compare(a, b any, _ *Codec) (int, error) {
	av, bv := a.(bool), b.(bool)
	switch {
	case av == bv:
		return 0, nil
	case bv: // av == false, bv == true
		return -1, nil
	default:
		return 1, nil
	}
}
