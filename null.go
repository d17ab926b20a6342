package lexicode

// nullEncoding encodes nil (the JSON-style Null variant) as an empty body.
type nullEncoding struct{}

func (nullEncoding) Prefix() string { return "b" }

func (nullEncoding) Match(v any) bool { return v == nil }

func (nullEncoding) Encode(buf []byte, _ any, _ *Codec) ([]byte, error) {
	return buf, nil
}

func (nullEncoding) Decode(_ []byte, _ *Codec, _ int) (any, error) {
	return nil, nil
}

func (nullEncoding) Compare(any, any, *Codec) (int, error) {
	return 0, nil
}
