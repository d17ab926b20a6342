package ext_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phiryll/lexicode"
	"github.com/phiryll/lexicode/ext"
)

func newExtCodec(t *testing.T) *lexicode.Codec {
	t.Helper()
	encodings := append(
		lexicode.DefaultEncodings(lexicode.FlatObjects),
		ext.BigInt(), ext.BigFloat(), ext.BigRat(), ext.Duration(), ext.Time(), ext.Complex128(),
	)
	codec, err := lexicode.New(lexicode.FlatObjects, encodings)
	require.NoError(t, err)
	return codec
}

func roundTrip(t *testing.T, codec *lexicode.Codec, v any) any {
	t.Helper()
	encoded, err := codec.Encode(v)
	require.NoError(t, err)
	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	return decoded
}

func TestBigIntRoundTripAndOrder(t *testing.T) {
	codec := newExtCodec(t)
	values := []*big.Int{
		big.NewInt(-1_000_000_000_000),
		big.NewInt(-257),
		big.NewInt(-1),
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(257),
		big.NewInt(1_000_000_000_000),
	}
	var prevEncoded []byte
	for i, v := range values {
		decoded := roundTrip(t, codec, v)
		assert.Equal(t, 0, v.Cmp(decoded.(*big.Int)), "round trip for %v", v)

		encoded, err := codec.Encode(v)
		require.NoError(t, err)
		if i > 0 {
			assert.Less(t, string(prevEncoded), string(encoded), "byte order for %v vs %v", values[i-1], v)
		}
		prevEncoded = encoded
	}
}

func TestBigFloatRoundTripAndOrder(t *testing.T) {
	codec := newExtCodec(t)
	values := []*big.Float{
		big.NewFloat(-123.5),
		big.NewFloat(-1),
		big.NewFloat(-0.001),
		big.NewFloat(0),
		big.NewFloat(0.001),
		big.NewFloat(1),
		big.NewFloat(123.5),
	}
	var prevEncoded []byte
	for i, v := range values {
		decoded := roundTrip(t, codec, v)
		assert.Equal(t, 0, v.Cmp(decoded.(*big.Float)), "round trip for %v", v)

		encoded, err := codec.Encode(v)
		require.NoError(t, err)
		if i > 0 {
			assert.Less(t, string(prevEncoded), string(encoded), "byte order for %v vs %v", values[i-1], v)
		}
		prevEncoded = encoded
	}
}

func TestBigRatRoundTrip(t *testing.T) {
	codec := newExtCodec(t)
	v := big.NewRat(-22, 7)
	decoded := roundTrip(t, codec, v)
	assert.Equal(t, 0, v.Cmp(decoded.(*big.Rat)))
}

func TestDurationRoundTripAndOrder(t *testing.T) {
	codec := newExtCodec(t)
	short, err := codec.Encode(time.Second)
	require.NoError(t, err)
	long, err := codec.Encode(time.Hour)
	require.NoError(t, err)
	assert.Less(t, string(short), string(long))

	decoded := roundTrip(t, codec, 90*time.Minute)
	assert.Equal(t, 90*time.Minute, decoded)
}

func TestTimeRoundTripAndOrder(t *testing.T) {
	codec := newExtCodec(t)
	earlier := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	decoded := roundTrip(t, codec, earlier)
	assert.True(t, earlier.Equal(decoded.(time.Time)))

	encEarlier, err := codec.Encode(earlier)
	require.NoError(t, err)
	encLater, err := codec.Encode(later)
	require.NoError(t, err)
	assert.Less(t, string(encEarlier), string(encLater))
}

func TestComplex128RoundTripAndOrder(t *testing.T) {
	codec := newExtCodec(t)
	decoded := roundTrip(t, codec, complex(1.5, -2.5))
	assert.Equal(t, complex(1.5, -2.5), decoded)

	low, err := codec.Encode(complex(1, 100))
	require.NoError(t, err)
	high, err := codec.Encode(complex(2, -100))
	require.NoError(t, err)
	assert.Less(t, string(low), string(high), "real part dominates imaginary part")
}
