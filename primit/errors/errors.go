// Package errors collects the small set of sentinel errors the rest of the
// module returns. Every failure mode in the library is one of these four
// values; nothing here carries a payload or a stack trace, and nothing
// panics on well-formed input.
package errors

import "errors"

var (
	// ErrBadMAC is returned by an AEAD decryptor's Finalize when the
	// caller-supplied tag does not match the one computed over the
	// associated data and ciphertext.
	ErrBadMAC = errors.New("primit: authentication tag mismatch")

	// ErrInvalidPublicKey is returned when a P-256 public point fails the
	// uncompressed-prefix check, has a coordinate out of range, or does
	// not satisfy the curve equation.
	ErrInvalidPublicKey = errors.New("primit: invalid public key")

	// ErrInvalidHexCharacter is returned by the hex codec when an input
	// byte is not in [0-9a-fA-F].
	ErrInvalidHexCharacter = errors.New("primit: invalid hex character")

	// ErrInvalidHexLength is returned by the hex codec when the input or
	// output buffer has an incompatible length (odd-length hex string on
	// decode, or too small a destination on either path).
	ErrInvalidHexLength = errors.New("primit: invalid hex length")
)
