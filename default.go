package lexicode

// DefaultEncodings returns the built-in registry, in the canonical JSON-style
// prefix order: Min, Null, Object, Array, Number, String, Bool, Max. Pass
// the result to New directly for the default codec, or splice in
// user-defined Encodings (see the ext package) before passing it to New —
// insert them wherever their Match won't be shadowed by an earlier entry,
// per the documented "first registration whose match accepts wins" rule.
func DefaultEncodings(form ObjectForm) []Encoding {
	_ = form // retained for API symmetry with New; the built-ins don't vary by form
	return []Encoding{
		minEncoding{},
		nullEncoding{},
		objectEncoding{},
		arrayEncoding{},
		numberEncoding{},
		stringEncoding{},
		boolEncoding{},
		maxEncoding{},
	}
}

// JSONCodec is the default Codec: FlatObjects form, prefixes
// 0x00 < 'b' < 'c' < 'd' < 'e' < 'f' < 'g' < 0xFF, yielding the order
// Min < Null < Object < Array < Number < String < Bool < Max. It is a
// package-level convenience value, not a required singleton; build your own
// with New and DefaultEncodings for a different ObjectForm or extension
// Encodings.
var JSONCodec = mustNew(FlatObjects, DefaultEncodings(FlatObjects))

func mustNew(form ObjectForm, encodings []Encoding) *Codec {
	codec, err := New(form, encodings)
	if err != nil {
		panic(err)
	}
	return codec
}
