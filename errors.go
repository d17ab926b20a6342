package lexicode

import "fmt"

// UnsupportedValueError is returned by Encode or Compare when given a value
// no registered Encoding's Match accepts.
type UnsupportedValueError struct {
	Value any
}

func (e UnsupportedValueError) Error() string {
	return fmt.Sprintf("lexicode: unsupported value of type %T", e.Value)
}

// UnknownPrefixError is returned by Decode when the leading byte of its
// input is not a registered prefix.
type UnknownPrefixError struct {
	Prefix byte
}

func (e UnknownPrefixError) Error() string {
	return fmt.Sprintf("lexicode: unknown prefix %#02x", e.Prefix)
}

// MalformedRegistryError is returned by New when an Encoding's Prefix is not
// exactly one byte.
type MalformedRegistryError struct {
	Key string
}

func (e MalformedRegistryError) Error() string {
	return fmt.Sprintf("lexicode: prefix %q must be exactly one byte", e.Key)
}

// DuplicatePrefixError is returned by New when two Encodings in the same
// registry share a prefix byte, violating the prefix-uniqueness invariant.
type DuplicatePrefixError struct {
	Prefix byte
}

func (e DuplicatePrefixError) Error() string {
	return fmt.Sprintf("lexicode: duplicate prefix %#02x", e.Prefix)
}

// errEmptyInput is returned by Decode when given a zero-length buffer; every
// encoded value begins with exactly one prefix byte, so there is no value
// to decode.
var errEmptyInput = fmt.Errorf("lexicode: cannot decode empty input")

// MalformedBodyError is returned by Decode when an Encoding's body cannot
// be parsed as that variant (for example, a Bool body that is neither
// "true" nor "false"). This is distinct from the lenient policy Array and
// Object use for a malformed trailing frame (see internal/escape); it
// covers bodies with no plausible frame boundary to truncate at all.
type MalformedBodyError struct {
	Encoding string
	Body     []byte
}

func (e MalformedBodyError) Error() string {
	return fmt.Sprintf("lexicode: malformed %s body %q", e.Encoding, e.Body)
}

// ErrMaxDepthExceeded is returned by Decode when an Array or Object nests
// more than MaxDepth deep, guarding against unbounded recursion on
// untrusted input.
var ErrMaxDepthExceeded = fmt.Errorf("lexicode: exceeded max decode depth of %d", MaxDepth)
