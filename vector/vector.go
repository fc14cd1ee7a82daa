// SPDX-License-Identifier: MIT

// Package vector - owning storage & accessors.
//
// Purpose:
//   - Provide an owning, fixed-length buffer of T with validated construction.
//   - Offer two access modes with distinct contracts: Elem (trusted, unchecked)
//     and At (validated, returns ErrIndexOutOfRange).
//   - Give value semantics through Clone and Assign: no two vectors ever share
//     a backing array.
//
// Complexity quicksheet:
//   - New/FromSlice: O(n); Len/Elem/At/Get/Set: O(1); Clone/Assign/Equal: O(n).

package vector

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxAt        = "At"
	ctxGet       = "Get"
	ctxSet       = "Set"
	ctxAssign    = "Assign"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// vectorErrorf wraps a sentinel with the method name and the offending argument.
// The sentinel survives via %w so callers keep using errors.Is.
func vectorErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, arg, err)
}

// Vector is an owning, fixed-length sequence of T.
//   - n is the element count, fixed between assignments.
//   - data is exclusively owned; len(data) == n at all times.
type Vector[T Number] struct {
	n    int // element count (0 < n <= MaxVectorSize)
	data []T // owned storage, never aliased by another Vector
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// New creates a vector of n zero-valued elements.
// MAIN DESCRIPTION:
//   - Public constructor with strict length validation.
//
// Implementation:
//   - Stage 1: validate 0 < n <= MaxVectorSize; else ErrInvalidSize.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidSize (length contract violation).
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Number](n int) (*Vector[T], error) {
	if err := ValidateSize(n); err != nil {
		return nil, vectorErrorf(ctxNew, n, err)
	}

	return &Vector[T]{n: n, data: make([]T, n)}, nil
}

// FromSlice creates a vector holding a copy of xs.
// The caller keeps ownership of xs; later writes to xs are not observed.
//
// Errors: ErrInvalidSize when xs is empty or longer than MaxVectorSize.
// Complexity: O(len(xs)).
func FromSlice[T Number](xs []T) (*Vector[T], error) {
	if err := ValidateSize(len(xs)); err != nil {
		return nil, vectorErrorf(ctxFromSlice, len(xs), err)
	}
	buf := make([]T, len(xs))
	copy(buf, xs)

	return &Vector[T]{n: len(xs), data: buf}, nil
}

// Len returns the element count. No side effects.
// Complexity: O(1).
func (v *Vector[T]) Len() int { return v.n }

// Elem returns a pointer to element i WITHOUT bounds validation.
// MAIN DESCRIPTION:
//   - Fast path for callers that already guarantee 0 <= i < Len()
//     (the arithmetic kernels, the matrix package).
//
// Behavior highlights:
//   - An out-of-range i is a programming error; the runtime bounds check of
//     the underlying slice panics. Use At for untrusted indices.
//   - The pointer stays valid until the next size-changing Assign.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector[T]) Elem(i int) *T { return &v.data[i] }

// At returns a pointer to element i, or ErrIndexOutOfRange.
// MAIN DESCRIPTION:
//   - Validated access; the returned pointer allows in-place mutation:
//     p, err := v.At(0); *p = 4.
//
// Errors:
//   - ErrIndexOutOfRange when i < 0 or i >= Len().
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector[T]) At(i int) (*T, error) {
	if err := ValidateIndex(i, v.n); err != nil {
		return nil, vectorErrorf(ctxAt, i, err)
	}

	return &v.data[i], nil
}

// Get returns the value at i or ErrIndexOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) Get(i int) (T, error) {
	if err := ValidateIndex(i, v.n); err != nil {
		var zero T
		return zero, vectorErrorf(ctxGet, i, err)
	}

	return v.data[i], nil
}

// Set stores x at i or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if err := ValidateIndex(i, v.n); err != nil {
		return vectorErrorf(ctxSet, i, err)
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep copy with its own backing array.
// Complexity: O(n) time and memory.
func (v *Vector[T]) Clone() *Vector[T] {
	cp := make([]T, v.n)
	copy(cp, v.data)

	return &Vector[T]{n: v.n, data: cp}
}

// Assign makes v a deep copy of src.
// MAIN DESCRIPTION:
//   - Value assignment with three distinct paths.
//
// Implementation:
//   - Stage 1: src == v (same pointer) → no-op.
//   - Stage 2: different length → replace owned storage with a fresh buffer of
//     src.Len() elements; v.Len() changes to src.Len().
//   - Stage 3: copy element values into v's (possibly new) buffer.
//
// Behavior highlights:
//   - On the equal-length path the backing array of v is kept, so pointers
//     obtained from Elem/At remain valid.
//   - src is never aliased.
//
// Errors:
//   - ErrNilVector when src is nil.
//
// Complexity:
//   - Time O(src.Len()), Space O(src.Len()) on the size-changing path, O(1) otherwise.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Vector.%s: %w", ctxAssign, err)
	}
	if v == src {
		return nil
	}
	if v.n != src.n {
		v.data = make([]T, src.n)
		v.n = src.n
	}
	copy(v.data, src.data)

	return nil
}

// Equal reports whether v and o have the same length and equal elements.
// Two nil vectors are equal; a nil and a non-nil vector are not.
// Complexity: O(n).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.n != o.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool { return !v.Equal(o) }

// Slice returns a copy of the elements as a plain slice.
// Complexity: O(n).
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.n)
	copy(out, v.data)

	return out
}

// String renders the vector as "[a, b, c]" for diagnostics.
// Not for hot paths.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < v.n; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", v.data[i])
	}
	b.WriteString(_fmtClose)

	return b.String()
}
