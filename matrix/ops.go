// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix-level arithmetic composed from vector.Vector row operations.
//   - Every operation allocates a fresh result; operands are never mutated.
//
// Determinism:
//   - Fixed i→j loop orders; Mul walks rows of A against rows of Bᵀ.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tmatrix/vector"
)

// ---------- operation tags (error context) ----------

const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opMulVec = "MulVec"
)

// MulScalar returns a new matrix with every element multiplied by x.
// Complexity: O(n²).
func (m *Matrix[T]) MulScalar(x T) *Matrix[T] {
	rows := make([]*vector.Vector[T], m.n)
	for i, r := range m.rows {
		rows[i] = r.MulScalar(x)
	}

	return &Matrix[T]{n: m.n, rows: rows}
}

// addSub computes row-wise m ± o. Internal helper for Add/Sub sharing
// validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, o).
//   - Stage 2: delegate each row to vector Add/Sub.
func (m *Matrix[T]) addSub(o *Matrix[T], sub bool, opTag string) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows := make([]*vector.Vector[T], m.n)
	var err error
	for i, r := range m.rows {
		if sub {
			rows[i], err = r.Sub(o.rows[i])
		} else {
			rows[i], err = r.Add(o.rows[i])
		}
		if err != nil {
			return nil, matrixErrorf(opTag, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return &Matrix[T]{n: m.n, rows: rows}, nil
}

// Add computes C = A + B element-wise and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrSizeMismatch (different dimension).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) { return m.addSub(o, false, opAdd) }

// Sub computes C = A - B element-wise and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrSizeMismatch (different dimension).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) { return m.addSub(o, true, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - C[i,j] is the dot product of row i of A and column j of B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(A, B).
//   - Stage 2: materialize Bᵀ once so column j of B is a row vector.
//   - Stage 3: C[i,j] = A.Row(i) · Bᵀ.Row(j) via vector.Dot.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrSizeMismatch (incompatible dimension).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the result plus O(n²) for Bᵀ.
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	ot := o.Transpose()
	res := newUnchecked[T](m.n)
	var (
		i, j int
		dot  T
		err  error
	)
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			dot, err = m.rows[i].Dot(ot.rows[j])
			if err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			*res.rows[i].Elem(j) = dot
		}
	}

	return res, nil
}

// MulVec returns y = m·v where y[i] = Row(i) · v.
//
// Errors:
//   - ErrNilVector (nil v), ErrSizeMismatch (v.Len() != Size()).
//
// Complexity:
//   - Time O(n²), Space O(n).
func (m *Matrix[T]) MulVec(v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := vector.ValidateNotNil(v); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if v.Len() != m.n {
		return nil, matrixErrorf(opMulVec, ErrSizeMismatch)
	}

	y := newRowUnchecked[T](m.n)
	for i, r := range m.rows {
		d, err := r.Dot(v)
		if err != nil {
			return nil, matrixErrorf(opMulVec, fmt.Errorf("row %d: %w", i, err))
		}
		*y.Elem(i) = d
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Complexity: O(n²).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	res := newUnchecked[T](m.n)
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			*res.rows[j].Elem(i) = *m.rows[i].Elem(j)
		}
	}

	return res
}

// newRowUnchecked allocates a zero vector of validated length n.
func newRowUnchecked[T Number](n int) *vector.Vector[T] {
	v, _ := vector.New[T](n) // n <= MaxMatrixSize < vector.MaxVectorSize, never fails

	return v
}
