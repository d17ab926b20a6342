package ext

import (
	"fmt"
	"math/big"

	"github.com/phiryll/lexicode"
)

// bigIntEncoding encodes a *big.Int as an 8-byte signed magnitude-length
// header followed by the magnitude bytes themselves, bit-flipped when the
// value is negative so that larger negative magnitudes sort before smaller
// ones. Ported from lexy's bigIntCodec (big.go), whose Write computes
// size := len(value.Bytes()), negates size when value.Sign() < 0, writes
// size via its ordered int64 codec, then writes the (possibly negated)
// magnitude bytes. The signed size header alone determines how many
// magnitude bytes follow, so no separate terminator is needed.
type bigIntEncoding struct{}

// BigInt returns an Encoding for *big.Int values, for splicing into a
// custom registry passed to lexicode.New (see lexicode.DefaultEncodings).
func BigInt() lexicode.Encoding { return bigIntEncoding{} }

func (bigIntEncoding) Prefix() string { return "i" }

func (bigIntEncoding) Match(v any) bool {
	_, ok := v.(*big.Int)
	return ok
}

func (bigIntEncoding) Encode(buf []byte, v any, _ *lexicode.Codec) ([]byte, error) {
	value := v.(*big.Int)
	magnitude := value.Bytes()
	size := int64(len(magnitude))
	if value.Sign() < 0 {
		size = -size
		magnitude = negateCopy(magnitude)
	}
	buf = append(buf, encodeOrderedInt64(size)...)
	buf = append(buf, magnitude...)
	return buf, nil
}

func (bigIntEncoding) Decode(body []byte, _ *lexicode.Codec, _ int) (any, error) {
	value, _, err := decodeBigInt(body)
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (bigIntEncoding) Compare(a, b any, _ *lexicode.Codec) (int, error) {
	return a.(*big.Int).Cmp(b.(*big.Int)), nil
}

// decodeBigInt decodes the encoding bigIntEncoding.Encode produces from the
// front of body, returning the value and the number of bytes consumed.
// Shared with bigRatEncoding, whose numerator is a signed *big.Int in this
// same self-lengthed form.
func decodeBigInt(body []byte) (*big.Int, int, error) {
	if len(body) < 8 {
		return nil, 0, fmt.Errorf("ext: malformed BigInt body: %x", body)
	}
	size := decodeOrderedInt64(body[:8])
	negative := size < 0
	if negative {
		size = -size
	}
	end := 8 + int(size)
	if size < 0 || end > len(body) {
		return nil, 0, fmt.Errorf("ext: malformed BigInt body: %x", body)
	}
	magnitude := body[8:end]
	if negative {
		magnitude = negateCopy(magnitude)
	}
	value := new(big.Int).SetBytes(magnitude)
	if negative {
		value.Neg(value)
	}
	return value, end, nil
}

// negateCopy flips every bit of buf into a new slice, mirroring lexicode's
// own unexported negateCopy. Reimplemented here since ext is meant to be
// imported alongside, not by, the root package.
func negateCopy(buf []byte) []byte {
	dst := make([]byte, len(buf))
	for i, b := range buf {
		dst[i] = ^b
	}
	return dst
}
