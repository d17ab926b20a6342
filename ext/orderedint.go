// Package ext supplies optional user-defined Encodings for common standard
// library types — time.Time, time.Duration, *big.Int, *big.Float, *big.Rat,
// and complex128 — none of which lexicode's core registry needs to know
// about, demonstrating (and exercising) the registry's extensibility. Each
// is ported from the corresponding lexy Codec (time.go, big.go, complex.go),
// re-expressed against lexicode's dynamic Value/Encoding model instead of
// lexy's static generic Codec[T].
//
// Splice these into a custom registry via DefaultEncodings plus your own
// slice surgery, then New; see lexicode's ExampleNew_extensions.
package ext

import "encoding/binary"

// encodeOrderedInt64 returns the 8-byte big-endian ordered encoding of n:
// flipping the sign bit turns two's-complement ordering into unsigned
// lexicographic ordering directly, with no IEEE-754-style NaN/mantissa
// wrinkles to work around (contrast internal/ordfloat).
func encodeOrderedInt64(n int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(n)^signBit64)
	return buf
}

func decodeOrderedInt64(buf []byte) int64 {
	return int64(binary.BigEndian.Uint64(buf) ^ signBit64)
}

// encodeOrderedUint64 returns the 8-byte big-endian encoding of n, already
// order-preserving since n is unsigned.
func encodeOrderedUint64(n uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, n)
	return buf
}

func decodeOrderedUint64(buf []byte) uint64 {
	return binary.BigEndian.Uint64(buf)
}

const signBit64 uint64 = 0x80_00_00_00_00_00_00_00
