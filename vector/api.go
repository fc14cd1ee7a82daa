// SPDX-License-Identifier: MIT
// Package vector: public API facades.
//
// Purpose:
//   - Package-level entry points mirroring the methods, for call sites that
//     read better as Sum(a, b) than a.Add(b).
//   - Facades add only a nil guard on the left operand, then delegate.

package vector

// Sum is an alias for a.Add(b): element-wise a + b.
// A nil a yields ErrNilVector instead of a nil dereference.
// Complexity: O(n).
func Sum[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	return a.Add(b)
}

// Diff is an alias for a.Sub(b): element-wise a − b.
// Complexity: O(n).
func Diff[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opSub, err)
	}

	return a.Sub(b)
}

// DotProduct is an alias for a.Dot(b).
// Complexity: O(n).
func DotProduct[T Number](a, b *Vector[T]) (T, error) {
	if err := ValidateNotNil(a); err != nil {
		var zero T
		return zero, opErrorf(opDot, err)
	}

	return a.Dot(b)
}

// Scale is an alias for v.MulScalar(x).
// Complexity: O(n).
func Scale[T Number](v *Vector[T], x T) *Vector[T] { return v.MulScalar(x) }

// Equal reports a.Equal(b); safe for nil operands.
func Equal[T Number](a, b *Vector[T]) bool { return a.Equal(b) }
