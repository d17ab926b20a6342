package lexicode

import "sort"

// objectEncoding encodes a map[string]any by canonicalizing its entries —
// sorted by key ascending, so two objects with equal entries always
// produce equal encodings regardless of Go's randomized map iteration
// order — and then delegating to arrayEncoding, in one of two forms
// selected by the Codec's ObjectForm:
//
//   - FlatObjects: [k0, v0, k1, v1, ...]
//   - PairedObjects: [[k0, v0], [k1, v1], ...]
//
// Both forms produce identical compare orderings, since entry-wise
// (key, value) comparison agrees with flattened-pair comparison as long as
// keys are compared before values, which both forms do.
type objectEncoding struct{}

func (objectEncoding) Prefix() string { return "c" }

func (objectEncoding) Match(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func (objectEncoding) Encode(buf []byte, v any, codec *Codec) ([]byte, error) {
	keys := sortedKeys(v.(map[string]any))
	m := v.(map[string]any)
	elements := flattenEntries(m, keys, codec.form)
	return arrayEncoding{}.Encode(buf, elements, codec)
}

func (objectEncoding) Decode(body []byte, codec *Codec, depth int) (any, error) {
	decoded, err := arrayEncoding{}.Decode(body, codec, depth)
	if err != nil {
		return nil, err
	}
	elements := decoded.([]any)
	m := make(map[string]any, len(elements))
	switch codec.form {
	case PairedObjects:
		for _, entry := range elements {
			pair, ok := entry.([]any)
			if !ok || len(pair) != 2 {
				return nil, MalformedBodyError{Encoding: "Object", Body: body}
			}
			key, ok := pair[0].(string)
			if !ok {
				return nil, MalformedBodyError{Encoding: "Object", Body: body}
			}
			m[key] = pair[1]
		}
	default: // FlatObjects
		if len(elements)%2 != 0 {
			// Odd element count: the trailing key has no value. Dropped
			// rather than failed, consistent with the lenient malformed-body
			// handling used elsewhere in this package.
			elements = elements[:len(elements)-1]
		}
		for i := 0; i < len(elements); i += 2 {
			key, ok := elements[i].(string)
			if !ok {
				return nil, MalformedBodyError{Encoding: "Object", Body: body}
			}
			m[key] = elements[i+1]
		}
	}
	return m, nil
}

// Compare canonicalizes both sides and compares entry-wise as (key, value)
// pairs, key first: the first entry where either the keys or, if the keys
// are equal, the values differ determines the result; otherwise the
// object with fewer entries is less.
func (objectEncoding) Compare(a, b any, codec *Codec) (int, error) {
	av, bv := a.(map[string]any), b.(map[string]any)
	keysA, keysB := sortedKeys(av), sortedKeys(bv)
	n := len(keysA)
	if len(keysB) < n {
		n = len(keysB)
	}
	for i := 0; i < n; i++ {
		if c := cmpOrdered(keysA[i], keysB[i]); c != 0 {
			return c, nil
		}
		c, err := codec.Compare(av[keysA[i]], bv[keysB[i]])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return cmpOrdered(len(keysA), len(keysB)), nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func flattenEntries(m map[string]any, keys []string, form ObjectForm) []any {
	switch form {
	case PairedObjects:
		pairs := make([]any, len(keys))
		for i, k := range keys {
			pairs[i] = []any{k, m[k]}
		}
		return pairs
	default: // FlatObjects
		flat := make([]any, 0, 2*len(keys))
		for _, k := range keys {
			flat = append(flat, k, m[k])
		}
		return flat
	}
}
