// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for dimension/nil/index checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return plain sentinel errors tagged with the validator name so call sites
//    can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → SameShape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSize – Ensures 0 < n <= MaxMatrixSize.
//
// Errors: ErrInvalidSize.
// Complexity: O(1).
func ValidateSize(n int) error {
	if n <= 0 || n > MaxMatrixSize {
		return validatorErrorf("ValidateSize", ErrInvalidSize)
	}

	return nil
}

// ValidateIndex – Ensures 0 <= i < n for a row or column index.
//
// Errors: ErrIndexOutOfRange.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf("ValidateIndex", ErrIndexOutOfRange)
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures a and b have equal dimension.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrSizeMismatch.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameShape", ErrSizeMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrSizeMismatch.
// Complexity: O(1).
func ValidateBinarySameShape[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// For square matrices the inner-dimension rule reduces to equal Size().
//
// Errors: ErrNilMatrix, ErrSizeMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.n != b.n { // Cols(a) == Size(a), Rows(b) == Size(b)
		return validatorErrorf("ValidateMulCompatible", ErrSizeMismatch)
	}

	return nil
}
