// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Provide a single source of truth for length, index and operand checks.
//  - Keep constructors and kernels minimal by delegating guards here.
//  - Return plain sentinel errors tagged with the validator name so call sites
//    can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → SameLen.

package vector

import "fmt"

// validatorErrorf tags a sentinel with the validator that detected it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSize ensures 0 < n <= MaxVectorSize.
//
// Errors: ErrInvalidSize.
// Complexity: O(1).
func ValidateSize(n int) error {
	if n <= 0 || n > MaxVectorSize {
		return validatorErrorf("ValidateSize", ErrInvalidSize)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
//
// Errors: ErrIndexOutOfRange.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrIndexOutOfRange)
	}

	return nil
}

// ValidateNotNil ensures the vector reference is non-nil.
//
// Errors: ErrNilVector.
// Complexity: O(1).
func ValidateNotNil[T Number](v *Vector[T]) error {
	if v == nil {
		return validatorErrorf("ValidateNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSameLen ensures a and b have equal length.
// Assumes both are non-nil (caller must ensure).
//
// Errors: ErrSizeMismatch.
// Complexity: O(1).
func ValidateSameLen[T Number](a, b *Vector[T]) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameLen", ErrSizeMismatch)
	}

	return nil
}

// ValidateBinarySameLen – Composite: NotNil(a) → NotNil(b) → SameLen.
//
// Errors: ErrNilVector, ErrSizeMismatch.
// Complexity: O(1).
func ValidateBinarySameLen[T Number](a, b *Vector[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameLen", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameLen", err)
	}
	if err := ValidateSameLen(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameLen", err)
	}

	return nil
}
