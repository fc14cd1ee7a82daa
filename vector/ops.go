// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Scalar and element-wise arithmetic on Vector[T].
//   - Every operation allocates a fresh result; operands are never mutated.
//
// Determinism:
//   - Fixed 0..n-1 loop order; no hidden allocations beyond the result.

package vector

import "fmt"

// ---------- operation tags (error context) ----------

const (
	opAdd = "Add"
	opSub = "Sub"
	opDot = "Dot"
)

// opErrorf wraps an error with the operation tag.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("Vector.%s: %w", tag, err)
}

// mapScalar returns a new vector with out[i] = f(v[i], x).
// Internal helper shared by the scalar operations.
func (v *Vector[T]) mapScalar(x T, f func(a, b T) T) *Vector[T] {
	out := &Vector[T]{n: v.n, data: make([]T, v.n)}
	for i := 0; i < v.n; i++ {
		out.data[i] = f(v.data[i], x)
	}

	return out
}

// AddScalar returns a new vector with out[i] = v[i] + x.
// Complexity: O(n).
func (v *Vector[T]) AddScalar(x T) *Vector[T] {
	return v.mapScalar(x, func(a, b T) T { return a + b })
}

// SubScalar returns a new vector with out[i] = v[i] - x.
// Complexity: O(n).
func (v *Vector[T]) SubScalar(x T) *Vector[T] {
	return v.mapScalar(x, func(a, b T) T { return a - b })
}

// MulScalar returns a new vector with out[i] = v[i] * x.
// Complexity: O(n).
func (v *Vector[T]) MulScalar(x T) *Vector[T] {
	return v.mapScalar(x, func(a, b T) T { return a * b })
}

// addSub computes out = v + o, or v - o when sub is true.
// Internal helper for Add/Sub to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateBinarySameLen(v, o).
//   - Stage 2: single flat loop into a fresh buffer.
//
// Notes:
//   - A bool selects the operator instead of a ±1 factor so that unsigned
//     element types stay correct.
func (v *Vector[T]) addSub(o *Vector[T], sub bool, opTag string) (*Vector[T], error) {
	if err := ValidateBinarySameLen(v, o); err != nil {
		return nil, opErrorf(opTag, err)
	}

	out := &Vector[T]{n: v.n, data: make([]T, v.n)}
	if sub {
		for i := 0; i < v.n; i++ {
			out.data[i] = v.data[i] - o.data[i]
		}
	} else {
		for i := 0; i < v.n; i++ {
			out.data[i] = v.data[i] + o.data[i]
		}
	}

	return out, nil
}

// Add returns the element-wise sum v + o.
//
// Errors:
//   - ErrNilVector (nil operand), ErrSizeMismatch (different lengths).
//
// Complexity:
//   - Time O(n), Space O(n).
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) { return v.addSub(o, false, opAdd) }

// Sub returns the element-wise difference v - o.
//
// Errors:
//   - ErrNilVector (nil operand), ErrSizeMismatch (different lengths).
//
// Complexity:
//   - Time O(n), Space O(n).
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) { return v.addSub(o, true, opSub) }

// Dot returns the inner product Σ v[i]*o[i].
// Neither operand is mutated.
//
// Errors:
//   - ErrNilVector (nil operand), ErrSizeMismatch (different lengths).
//
// Complexity:
//   - Time O(n), Space O(1).
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var sum T
	if err := ValidateBinarySameLen(v, o); err != nil {
		return sum, opErrorf(opDot, err)
	}
	for i := 0; i < v.n; i++ {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}
