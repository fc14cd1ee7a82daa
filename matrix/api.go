// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical method.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// AI-Hints:
//   - Facades guard a nil left operand with ErrNilMatrix; methods on a nil
//     receiver would otherwise dereference it.

package matrix

// NewZeros returns a new zero-initialized n×n matrix.
// It is a thin alias of New with an intention-revealing name.
// Complexity: O(n²).
func NewZeros[T Number](n int) (*Matrix[T], error) { return New[T](n) }

// CloneMatrix returns m.Clone(); thin wrapper for API discoverability.
// Complexity: O(n²).
func CloneMatrix[T Number](m *Matrix[T]) *Matrix[T] { return m.Clone() }

// ZerosLike returns a new zero matrix with the same dimension as m.
// Complexity: O(n²).
func ZerosLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New[T](m.Size())
}

// Sum is an alias for a.Add(b): element-wise a + b.
// Complexity: O(n²).
func Sum[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.Add(b)
}

// Diff is an alias for a.Sub(b): element-wise a − b.
// Complexity: O(n²).
func Diff[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return a.Sub(b)
}

// Product is an alias for a.Mul(b): matrix product a × b.
// Complexity: O(n³).
func Product[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return a.Mul(b)
}

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(n²).
//
// AI-Hints: Good for small helpers and chaining.
func T[E Number](m *Matrix[E]) (*Matrix[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}

	return m.Transpose(), nil
}

// ScaleBy is an alias for MulScalar: α*m.
// Complexity: O(n²).
func ScaleBy[T Number](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Scale", err)
	}

	return m.MulScalar(alpha), nil
}
