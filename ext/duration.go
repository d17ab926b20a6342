package ext

import (
	"fmt"
	"time"

	"github.com/phiryll/lexicode"
)

// durationEncoding encodes a time.Duration as its int64 nanosecond count in
// ordered form: fixed-width, no escaping needed. Ported from lexy's
// Int64Codec usage pattern (int.go), specialized to time.Duration.
type durationEncoding struct{}

// Duration returns an Encoding for time.Duration values.
func Duration() lexicode.Encoding { return durationEncoding{} }

func (durationEncoding) Prefix() string { return "m" }

func (durationEncoding) Match(v any) bool {
	_, ok := v.(time.Duration)
	return ok
}

func (durationEncoding) Encode(buf []byte, v any, _ *lexicode.Codec) ([]byte, error) {
	return append(buf, encodeOrderedInt64(int64(v.(time.Duration)))...), nil
}

func (durationEncoding) Decode(body []byte, _ *lexicode.Codec, _ int) (any, error) {
	if len(body) != 8 {
		return nil, malformedDurationBody(body)
	}
	return time.Duration(decodeOrderedInt64(body)), nil
}

func (durationEncoding) Compare(a, b any, _ *lexicode.Codec) (int, error) {
	da, db := a.(time.Duration), b.(time.Duration)
	switch {
	case da < db:
		return -1, nil
	case da > db:
		return 1, nil
	default:
		return 0, nil
	}
}

func malformedDurationBody(body []byte) error {
	return fmt.Errorf("ext: malformed Duration body: %x", body)
}
