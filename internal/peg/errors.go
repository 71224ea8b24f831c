// internal/peg/errors.go
//
// Validation error kinds. All of them are caller errors: nothing is retried,
// the caller decides whether to reset, ask for new input, or abort.

package peg

import "errors"

var (
	// ErrLengthMismatch: a guess, candidate or feedback disagrees with the code length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrEmptyAlphabet: no usable symbols were supplied.
	ErrEmptyAlphabet = errors.New("empty alphabet")

	// ErrInvalidSymbol: a code holds Unset, a duplicate, or a symbol outside the alphabet.
	ErrInvalidSymbol = errors.New("invalid symbol")
)
