// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation returns
// one of these (wrapped with call-site context via %w) and tests match them with
// errors.Is. Nothing in this package panics on a user-triggered condition except
// the explicitly unchecked accessor Elem.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." so it can be grepped in logs of
// the calling application. The matrix package re-exports the first three
// sentinels under the same names, so errors.Is works across both packages.

var (
	// ErrInvalidSize is returned when a requested length is non-positive or
	// exceeds MaxVectorSize. Raised at construction only.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrIndexOutOfRange indicates that a checked access used an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates that a binary operation received operands of different lengths.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")
)
