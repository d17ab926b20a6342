package ext

import (
	"fmt"
	"math/big"

	"github.com/phiryll/lexicode"
)

// bigFloatEncoding encodes a *big.Float by normalizing it to a mantissa in
// [0.5, 1) and a base-2 exponent (via big.Float.MantExp, as lexy's
// bigFloatCodec doc describes: "shift the value so its significant bits
// sit left of the binary point"), extracting the mantissa as an integer at
// the value's own precision, and writing sign, exponent, mantissa, original
// precision, and rounding mode in a self-lengthed layout: no escaping is
// needed since the mantissa's byte length is written immediately before it.
//
// Unlike lexy's version, which must escape-and-terminate the mantissa bytes
// because its Codec composition model concatenates same-Codec-type fields
// without fixed-width markers, this Encoding's body is itself opaque to the
// caller (Array/Object frame the whole Encode output, not its internal
// fields), so an explicit length header serves the same self-delimiting
// purpose more simply.
//
// For ordering, everything after the sign byte is bit-flipped when the
// value is negative, mirroring bigIntEncoding: a more negative value has a
// larger magnitude, which must sort first.
type bigFloatEncoding struct{}

// BigFloat returns an Encoding for *big.Float values, for splicing into a
// custom registry passed to lexicode.New.
func BigFloat() lexicode.Encoding { return bigFloatEncoding{} }

func (bigFloatEncoding) Prefix() string { return "k" }

func (bigFloatEncoding) Match(v any) bool {
	_, ok := v.(*big.Float)
	return ok
}

// sign byte values, chosen so byte comparison already sorts negative <
// zero < positive without needing to consult anything else.
const (
	signNegative byte = 0
	signZero     byte = 1
	signPositive byte = 2
)

func (bigFloatEncoding) Encode(buf []byte, v any, _ *lexicode.Codec) ([]byte, error) {
	value := v.(*big.Float)
	prec := value.Prec()
	if prec == 0 {
		prec = value.MinPrec()
	}

	switch value.Sign() {
	case 0:
		buf = append(buf, signZero)
		buf = append(buf, encodeOrderedUint64(uint64(prec))...)
		return append(buf, byte(value.Mode())), nil
	case -1:
		buf = append(buf, signNegative)
	default:
		buf = append(buf, signPositive)
	}

	mant := new(big.Float).SetPrec(prec)
	exp := value.MantExp(mant) // value == mant * 2**exp, 0.5 <= |mant| < 1
	shifted := new(big.Float).SetPrec(prec).SetMantExp(mant, int(prec))
	mantInt, _ := shifted.Int(nil)
	mantInt.Abs(mantInt)
	mantBytes := mantInt.Bytes()

	payload := make([]byte, 0, 8+8+len(mantBytes)+8+1)
	payload = append(payload, encodeOrderedInt64(int64(exp))...)
	payload = append(payload, encodeOrderedUint64(uint64(len(mantBytes)))...)
	payload = append(payload, mantBytes...)
	payload = append(payload, encodeOrderedUint64(uint64(prec))...)
	payload = append(payload, byte(value.Mode()))

	if value.Sign() < 0 {
		payload = negateCopy(payload)
	}
	return append(buf, payload...), nil
}

func (bigFloatEncoding) Decode(body []byte, _ *lexicode.Codec, _ int) (any, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("ext: malformed BigFloat body: %x", body)
	}
	sign, payload := body[0], body[1:]

	if sign == signZero {
		if len(payload) != 9 {
			return nil, fmt.Errorf("ext: malformed BigFloat body: %x", body)
		}
		prec := decodeOrderedUint64(payload[:8])
		mode := big.RoundingMode(payload[8])
		return new(big.Float).SetPrec(uint(prec)).SetMode(mode), nil
	}

	if sign == signNegative {
		payload = negateCopy(payload)
	}
	if len(payload) < 25 {
		return nil, fmt.Errorf("ext: malformed BigFloat body: %x", body)
	}
	exp := int(decodeOrderedInt64(payload[:8]))
	mantLen := decodeOrderedUint64(payload[8:16])
	if uint64(len(payload)) != 25+mantLen {
		return nil, fmt.Errorf("ext: malformed BigFloat body: %x", body)
	}
	mantBytes := payload[16 : 16+mantLen]
	rest := payload[16+mantLen:]
	prec := decodeOrderedUint64(rest[:8])
	mode := big.RoundingMode(rest[8])

	mantInt := new(big.Int).SetBytes(mantBytes)
	if sign == signNegative {
		mantInt.Neg(mantInt)
	}
	value := new(big.Float).SetPrec(uint(prec)).SetMode(mode).SetInt(mantInt)
	value.SetMantExp(value, exp-int(prec))
	return value, nil
}

func (bigFloatEncoding) Compare(a, b any, _ *lexicode.Codec) (int, error) {
	fa, fb := a.(*big.Float), b.(*big.Float)
	if c := fa.Cmp(fb); c != 0 {
		return c, nil
	}
	if fa.Prec() != fb.Prec() {
		return cmpUint(uint64(fa.Prec()), uint64(fb.Prec())), nil
	}
	return cmpUint(uint64(fa.Mode()), uint64(fb.Mode())), nil
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
