package ext

import (
	"fmt"
	"time"

	"github.com/phiryll/lexicode"
)

// timeEncoding encodes a time.Time as its UTC instant (seconds and
// nanoseconds since the epoch, each ordered and fixed-width) followed by
// its original zone offset in seconds east of UTC, also ordered and
// fixed-width. Two times representing the same instant in different zones
// compare equal on the instant and break the tie on zone offset, matching
// lexy's timeCodec (time.go), which likewise orders by UTC instant first
// and preserves the zone only as a tiebreaker, not as a primary ordering
// component (clock time in an unspecified zone isn't linearly ordered).
type timeEncoding struct{}

// Time returns an Encoding for time.Time values.
func Time() lexicode.Encoding { return timeEncoding{} }

func (timeEncoding) Prefix() string { return "n" }

func (timeEncoding) Match(v any) bool {
	_, ok := v.(time.Time)
	return ok
}

func (timeEncoding) Encode(buf []byte, v any, _ *lexicode.Codec) ([]byte, error) {
	t := v.(time.Time)
	_, offset := t.Zone()
	buf = append(buf, encodeOrderedInt64(t.Unix())...)
	buf = append(buf, encodeOrderedInt64(int64(t.Nanosecond()))...)
	buf = append(buf, encodeOrderedInt64(int64(offset))...)
	return buf, nil
}

func (timeEncoding) Decode(body []byte, _ *lexicode.Codec, _ int) (any, error) {
	if len(body) != 24 {
		return nil, fmt.Errorf("ext: malformed Time body: %x", body)
	}
	sec := decodeOrderedInt64(body[:8])
	nsec := decodeOrderedInt64(body[8:16])
	offset := int(decodeOrderedInt64(body[16:24]))
	loc := time.FixedZone("", offset)
	return time.Unix(sec, nsec).In(loc), nil
}

func (timeEncoding) Compare(a, b any, _ *lexicode.Codec) (int, error) {
	ta, tb := a.(time.Time), b.(time.Time)
	switch {
	case ta.Before(tb):
		return -1, nil
	case ta.After(tb):
		return 1, nil
	}
	_, oa := ta.Zone()
	_, ob := tb.Zone()
	switch {
	case oa < ob:
		return -1, nil
	case oa > ob:
		return 1, nil
	default:
		return 0, nil
	}
}
