// Package errs defines the decode-only error taxonomy shared by every layer
// of the bitcode codec: the bit buffer, the primitive column codecs, and the
// composite column codecs.
//
// Encoding a well-typed value never fails. Decoding fails with exactly one
// of the three sentinel errors below, returned as is (not wrapped); callers
// match it with errors.Is or Is.
package errs

import "errors"

var (
	// ErrEof indicates the input ended before a required bit could be read,
	// or a column's declared body size exceeds the remaining bits in the
	// stream.
	ErrEof = errors.New("bitcode: unexpected end of input")

	// ErrInvalid indicates a discriminant out of range for its sum, a
	// bounded integer outside its declared range, a gamma code exceeding
	// the permitted magnitude, a string that fails well-formedness
	// validation, or a recursion depth limit exceeded.
	ErrInvalid = errors.New("bitcode: invalid encoding")

	// ErrExpectedEof indicates decoding completed successfully but
	// unconsumed, non-padding bits remain in the input.
	ErrExpectedEof = errors.New("bitcode: unconsumed trailing data")
)

// Is reports whether err matches target, following the standard errors.Is
// wrapping chain. It exists purely so callers of this package don't need an
// extra import when they already imported errs for the sentinels.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
