package lexicode_test

import (
	"bytes"
	"cmp"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phiryll/lexicode"
)

var seedsString = []string{
	"",
	"q",
	"\xFE",
	"\x00",
	"\x01",
	"\xFF",
	"a b c",
	"a b d",
	"a/\xFF34\x009``[*\x01#)2f\xFEmn",
}

var seedsFloat64 = []float64{
	math.MaxFloat64,
	math.SmallestNonzeroFloat64,
	math.Inf(1),
	0.0,
	123.456e+23,
	-math.MaxFloat64,
	-math.SmallestNonzeroFloat64,
	math.Inf(-1),
	math.Copysign(0.0, -1.0),
	-123.456e+23,
}

func addUnorderedPairs[T any](f *testing.F, values ...T) {
	for i, x := range values {
		for _, y := range values[i+1:] {
			f.Add(x, y)
		}
	}
}

// FuzzString round-trips arbitrary strings through the default registry.
func FuzzString(f *testing.F) {
	for _, s := range seedsString {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, value string) {
		b, err := lexicode.JSONCodec.Encode(value)
		require.NoError(t, err)
		got, err := lexicode.JSONCodec.Decode(b)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})
}

// FuzzNumber round-trips arbitrary non-NaN float64s through the default
// registry. NaN is excluded since Number.Encode rejects it (there's no
// total order for NaN to participate in).
func FuzzNumber(f *testing.F) {
	for _, x := range seedsFloat64 {
		f.Add(x)
	}
	f.Fuzz(func(t *testing.T, value float64) {
		if math.IsNaN(value) {
			t.Skip("NaN has no defined order")
		}
		b, err := lexicode.JSONCodec.Encode(value)
		require.NoError(t, err)
		got, err := lexicode.JSONCodec.Decode(b)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})
}

// FuzzCmpString checks that encoded byte order agrees with string order for
// arbitrary pairs.
func FuzzCmpString(f *testing.F) {
	addUnorderedPairs(f, seedsString...)
	f.Fuzz(func(t *testing.T, a, b string) {
		aEncoded, err := lexicode.JSONCodec.Encode(a)
		require.NoError(t, err)
		bEncoded, err := lexicode.JSONCodec.Encode(b)
		require.NoError(t, err)
		assert.Equal(t, cmp.Compare(a, b), bytes.Compare(aEncoded, bEncoded))
	})
}

// FuzzCmpNumber checks that encoded byte order agrees with numeric order
// for arbitrary non-NaN pairs, with -0.0 sorting just before +0.0.
func FuzzCmpNumber(f *testing.F) {
	addUnorderedPairs(f, seedsFloat64...)
	f.Fuzz(func(t *testing.T, a, b float64) {
		if math.IsNaN(a) || math.IsNaN(b) {
			t.Skip("NaN has no defined order")
		}
		aEncoded, err := lexicode.JSONCodec.Encode(a)
		require.NoError(t, err)
		bEncoded, err := lexicode.JSONCodec.Encode(b)
		require.NoError(t, err)
		want := cmp.Compare(a, b)
		if want == 0 && math.Signbit(a) != math.Signbit(b) {
			want = 1
			if math.Signbit(a) {
				want = -1
			}
		}
		assert.Equal(t, want, bytes.Compare(aEncoded, bEncoded))
	})
}

// FuzzCmpNegString checks that Descending reverses string order.
func FuzzCmpNegString(f *testing.F) {
	addUnorderedPairs(f, seedsString...)
	descending := lexicode.Descending(lexicode.JSONCodec)
	f.Fuzz(func(t *testing.T, a, b string) {
		aEncoded, err := descending.Encode(a)
		require.NoError(t, err)
		bEncoded, err := descending.Encode(b)
		require.NoError(t, err)
		assert.Equal(t, cmp.Compare(b, a), bytes.Compare(aEncoded, bEncoded))
	})
}

// randomTuple builds a random 3-element array of mixed scalar types (nil,
// number, string, bool); its elements are never themselves arrays.
func randomTuple(r *rand.Rand) []any {
	values := make([]any, 3)
	for i := range values {
		switch r.Intn(4) {
		case 0:
			values[i] = nil
		case 1:
			values[i] = r.Float64()*2e10 - 1e10
		case 2:
			values[i] = randomString(r)
		default:
			values[i] = r.Intn(2) == 0
		}
	}
	return values
}

func randomString(r *rand.Rand) string {
	n := r.Intn(12)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Intn(256))
	}
	return string(b)
}

// TestRandomTupleRoundTripAndOrder generates 100,000 random 3-element
// tuples and checks both that each round-trips exactly and that every
// pairwise encoded byte comparison against its predecessor agrees with
// Codec.Compare, the same universal property FuzzCmp* check one type at a
// time but exercised here across mixed-type arrays.
func TestRandomTupleRoundTripAndOrder(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const n = 100_000
	var prevValue any
	var prevEncoded []byte
	for i := 0; i < n; i++ {
		value := randomTuple(r)
		encoded, err := lexicode.JSONCodec.Encode(value)
		require.NoError(t, err)
		decoded, err := lexicode.JSONCodec.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, value, decoded)

		if i > 0 {
			byCompare, err := lexicode.JSONCodec.Compare(prevValue, value)
			require.NoError(t, err)
			assert.Equal(t, byCompare, bytes.Compare(prevEncoded, encoded))
		}
		prevValue, prevEncoded = value, encoded
	}
}
