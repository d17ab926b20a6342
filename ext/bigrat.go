package ext

import (
	"fmt"
	"math/big"

	"github.com/phiryll/lexicode"
)

// bigRatEncoding encodes a *big.Rat as its signed numerator (bigIntEncoding's
// self-lengthed form) immediately followed by its positive denominator
// (same form, always non-negative). Each component's own length header
// makes the two self-delimiting without needing an escape/terminator pass.
//
// Ordering is numerator-then-denominator, NOT numeric value: for a fixed
// positive numerator, a smaller denominator means a numerically larger
// fraction, so 1/2 sorts before 1/3 here, the opposite of numeric
// magnitude for proper fractions. This is the same tradeoff lexy's
// bigFloatCodec doc calls out for component-wise composite encodings:
// simple and fast, at the cost of not matching the type's natural Cmp
// ordering. Callers who need numeric order should compare the decoded
// *big.Rat values directly with Cmp rather than relying on this
// Encoding's Compare.
type bigRatEncoding struct{}

// BigRat returns an Encoding for *big.Rat values, for splicing into a
// custom registry passed to lexicode.New.
func BigRat() lexicode.Encoding { return bigRatEncoding{} }

func (bigRatEncoding) Prefix() string { return "j" }

func (bigRatEncoding) Match(v any) bool {
	_, ok := v.(*big.Rat)
	return ok
}

func (bigRatEncoding) Encode(buf []byte, v any, codec *lexicode.Codec) ([]byte, error) {
	value := v.(*big.Rat)
	var err error
	buf, err = bigIntEncoding{}.Encode(buf, value.Num(), codec)
	if err != nil {
		return nil, err
	}
	return bigIntEncoding{}.Encode(buf, value.Denom(), codec)
}

func (bigRatEncoding) Decode(body []byte, _ *lexicode.Codec, _ int) (any, error) {
	num, n, err := decodeBigInt(body)
	if err != nil {
		return nil, fmt.Errorf("ext: malformed BigRat body: %w", err)
	}
	denom, _, err := decodeBigInt(body[n:])
	if err != nil {
		return nil, fmt.Errorf("ext: malformed BigRat body: %w", err)
	}
	return new(big.Rat).SetFrac(num, denom), nil
}

func (bigRatEncoding) Compare(a, b any, _ *lexicode.Codec) (int, error) {
	ra, rb := a.(*big.Rat), b.(*big.Rat)
	if c := ra.Num().Cmp(rb.Num()); c != 0 {
		return c, nil
	}
	return ra.Denom().Cmp(rb.Denom()), nil
}
