// Package lexicode implements a lexicographically order-preserving binary
// codec for structured values: null, boolean, number, string, array,
// object, two sentinels (Min, Max), and user-defined extension types. The
// natural byte-wise ordering of an encoded value agrees with the
// component-wise semantic ordering of the original value, which lets an
// ordered key-value store index structured tuples while preserving
// prefix-range and component-wise query semantics.
//
// A Value is any Go value accepted by some registered Encoding's Match:
// nil, bool, a numeric type (widened to float64), string, []any,
// map[string]any, Min, Max, or a caller-registered extension type (see the
// ext subpackage for examples of the latter).
//
// The default registry, JSONCodec, assigns one-byte prefixes so that
// Null < Object < Array < Number < String < Bool, with Min and Max
// sorting below and above everything else. See DefaultEncodings to build a
// registry with extension Encodings spliced in, or New to build one from
// scratch.
package lexicode

import (
	"math"
	"reflect"
)

// Encoding is a named contract for one variant of Value: a match
// predicate, and encode/decode/compare functions parameterized by the
// enclosing Codec so they can recurse into nested values.
//
// User-defined Encodings conform to the same contract as the built-in
// ones; see the ext package.
type Encoding interface {
	// Prefix returns this Encoding's one-byte prefix, as a string so New
	// can detect and report a misconfigured prefix (MalformedRegistryError)
	// rather than relying on the type system to rule one out.
	Prefix() string

	// Match reports whether this Encoding claims v. Matchers should be
	// mutually exclusive within a registry; when more than one would
	// accept the same v, the registry's declared order decides — the
	// first Encoding to accept wins.
	Match(v any) bool

	// Encode appends the encoded body (everything but the prefix byte) of
	// v to buf, using codec to recursively encode nested values.
	Encode(buf []byte, v any, codec *Codec) ([]byte, error)

	// Decode decodes a value of this Encoding's variant from body, the
	// bytes following the prefix byte, using codec to recursively decode
	// nested values. depth is the current Value-nesting depth, for
	// recursion-depth enforcement; Encodings that don't recurse into codec
	// may ignore it.
	Decode(body []byte, codec *Codec, depth int) (any, error)

	// Compare returns the sign of the in-memory comparison of a and b,
	// both already accepted by Match, using codec to recursively compare
	// nested values. Compare must agree with the byte-wise comparison of
	// what Encode produces for a and b.
	Compare(a, b any, codec *Codec) (int, error)
}

// ObjectForm selects how Object values (map[string]any) are canonicalized
// before encoding. See DefaultEncodings.
type ObjectForm int

const (
	// FlatObjects sorts an object's entries by key and flattens them to
	// [k0, v0, k1, v1, ...], encoded as an Array. This is the form used by
	// JSONCodec.
	FlatObjects ObjectForm = iota

	// PairedObjects sorts an object's entries by key and encodes them as
	// an Array of two-element [key, value] Arrays. This form exists for
	// backward compatibility with previously-persisted data; a Codec uses
	// exactly one form.
	PairedObjects
)

// MaxDepth is the default limit on Array/Object nesting depth Decode will
// follow before returning ErrMaxDepthExceeded, guarding against unbounded
// stack growth when decoding untrusted input.
const MaxDepth = 10_000

// Codec dispatches Encode, Decode, and Compare to a registry of Encodings:
// by value for Encode/Compare, by leading prefix byte for Decode. A Codec
// is immutable after New and safe for concurrent use; its one piece of
// mutable state, a match-dispatch cache, is internally synchronized and
// purely a speed optimization (see dispatchCache).
type Codec struct {
	order    []Encoding
	byPrefix map[byte]Encoding
	form     ObjectForm
	dispatch dispatchCache

	// base is non-nil only for a Codec returned by Descending, in which
	// case Encode/Decode/Compare delegate to base and reverse its order
	// instead of consulting order/byPrefix/form/dispatch above, which are
	// left zero-valued.
	base *Codec
}

// New constructs a Codec from encodings, tried in the given order for
// Encode/Compare dispatch (see Encoding.Match) and indexed by prefix byte
// for Decode. New fails with a MalformedRegistryError if any Encoding's
// Prefix is not exactly one byte, or a DuplicatePrefixError if two
// Encodings share a prefix byte.
func New(form ObjectForm, encodings []Encoding) (*Codec, error) {
	byPrefix := make(map[byte]Encoding, len(encodings))
	for _, enc := range encodings {
		key := enc.Prefix()
		if len(key) != 1 {
			return nil, MalformedRegistryError{Key: key}
		}
		prefix := key[0]
		if _, exists := byPrefix[prefix]; exists {
			return nil, DuplicatePrefixError{Prefix: prefix}
		}
		byPrefix[prefix] = enc
	}
	return &Codec{
		order:    append([]Encoding(nil), encodings...),
		byPrefix: byPrefix,
		form:     form,
		dispatch: newDispatchCache(),
	}, nil
}

// ObjectForm returns the object canonicalization form this Codec was
// constructed with.
func (c *Codec) ObjectForm() ObjectForm {
	return c.form
}

// Encode returns v encoded as a new []byte. Encode fails with an
// UnsupportedValueError if no registered Encoding's Match accepts v.
func (c *Codec) Encode(v any) ([]byte, error) {
	if c.base != nil {
		encoded, err := c.base.Encode(v)
		if err != nil {
			return nil, err
		}
		return negateBytes(encoded), nil
	}
	enc, err := c.match(v)
	if err != nil {
		return nil, err
	}
	buf := []byte{enc.Prefix()[0]}
	return enc.Encode(buf, v, c)
}

// Decode decodes a Value from data. Decode fails with an
// UnknownPrefixError if data's leading byte is not a registered prefix.
func (c *Codec) Decode(data []byte) (any, error) {
	if c.base != nil {
		return c.base.Decode(negateCopy(data))
	}
	return c.decode(data, 0)
}

func (c *Codec) decode(data []byte, depth int) (any, error) {
	if depth > MaxDepth {
		return nil, ErrMaxDepthExceeded
	}
	if len(data) == 0 {
		return nil, errEmptyInput
	}
	enc, ok := c.byPrefix[data[0]]
	if !ok {
		return nil, UnknownPrefixError{Prefix: data[0]}
	}
	return enc.Decode(data[1:], c, depth+1)
}

// Compare returns the sign of the semantic ordering of a and b: -1 if
// a < b, 0 if a == b, 1 if a > b. Compare fails with an
// UnsupportedValueError if no registered Encoding's Match accepts a or b.
//
// Compare always agrees with the byte-wise comparison of Encode(a) and
// Encode(b) (see Codec.Encode), and is typically cheaper since it avoids
// allocating the encoded bytes.
func (c *Codec) Compare(a, b any) (int, error) {
	if c.base != nil {
		return c.base.Compare(b, a)
	}
	if sameReference(a, b) {
		return 0, nil
	}
	encA, err := c.match(a)
	if err != nil {
		return 0, err
	}
	encB, err := c.match(b)
	if err != nil {
		return 0, err
	}
	if pa, pb := encA.Prefix()[0], encB.Prefix()[0]; pa != pb {
		return cmpByte(pa, pb), nil
	}
	return encA.Compare(a, b, c)
}

// match finds the first Encoding in registry order whose Match accepts v,
// consulting and updating the dispatch cache along the way.
func (c *Codec) match(v any) (Encoding, error) {
	if t := reflect.TypeOf(v); t != nil {
		if enc, ok := c.dispatch.get(t); ok && enc.Match(v) {
			return enc, nil
		}
		for _, enc := range c.order {
			if enc.Match(v) {
				c.dispatch.put(t, enc)
				return enc, nil
			}
		}
		return nil, UnsupportedValueError{Value: v}
	}
	// v has no dynamic type (v == nil); only Null can match, and it's not
	// worth caching against a nil reflect.Type.
	for _, enc := range c.order {
		if enc.Match(v) {
			return enc, nil
		}
	}
	return nil, UnsupportedValueError{Value: v}
}

func cmpByte(a, b byte) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sameReference reports whether a and b are the identical slice, map, or
// pointer, or are == as comparable scalars: a referential-identity fast
// path for Compare; scalars compare equal by value since Go has no
// separate notion of scalar identity.
func sameReference(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() != bv.Kind() {
		return false
	}
	switch av.Kind() {
	case reflect.Invalid:
		// both nil
		return true
	case reflect.Slice, reflect.Map, reflect.Ptr:
		if av.IsNil() || bv.IsNil() {
			return false
		}
		if av.Kind() == reflect.Slice && av.Len() != bv.Len() {
			// s[:n] and s share a data pointer but are different values.
			return false
		}
		return av.Pointer() == bv.Pointer()
	case reflect.Float32, reflect.Float64:
		// a == b treats +0.0 and -0.0 as equal, but numberEncoding's byte
		// encoding doesn't; compare bit patterns instead so this fast path
		// can't short-circuit Compare to 0 for two differently-signed
		// zeros.
		return math.Float64bits(av.Float()) == math.Float64bits(bv.Float())
	default:
		return comparableEqual(a, b)
	}
}

// comparableEqual reports a == b, treating a non-comparable dynamic type
// (a struct-kind extension value with a slice or map field, for example) as
// simply not identical rather than letting the == panic propagate out of
// what is only a best-effort fast path.
func comparableEqual(a, b any) (equal bool) {
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}
