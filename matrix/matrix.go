// SPDX-License-Identifier: MIT

// Package matrix - square storage over owned row vectors & safe accessors.
//
// Purpose:
//   - Compose a square matrix from n owned vector.Vector rows of length n.
//   - Guarantee safety at the public surface: RowAt/At/Get/Set return errors.
//   - Give value semantics through Clone and Assign (deep, per row).
//
// AI-Hints:
//   - Row(i) is the trusted fast path; use RowAt for untrusted indices.
//   - Rows returned by Row/RowAt are owned by the matrix; mutate elements
//     through them, but never Assign a differently sized vector into a row.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; Row/RowAt/At/Get/Set: O(1); Clone/Assign/Equal: O(n²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tmatrix/vector"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxIdentity = "Identity"
	ctxFromRows = "FromRows"
	ctxRowAt    = "RowAt"
	ctxAt       = "At"
	ctxGet      = "Get"
	ctxSet      = "Set"
	ctxAssign   = "Assign"
)

// ---------- Formatting literals ----------
const (
	_fmtRowClose = "\n"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// cellErrorf wraps an error with a uniform Matrix context and callsite indices.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a square matrix stored as n owned rows.
//   - n is the dimension (rows == cols == n).
//   - rows holds n vectors, each of length n; no row is shared with another Matrix.
type Matrix[T Number] struct {
	n    int                 // dimension (0 < n <= MaxMatrixSize)
	rows []*vector.Vector[T] // owned rows, len(rows) == n
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates an n×n zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict dimension validation.
//
// Implementation:
//   - Stage 1: validate 0 < n <= MaxMatrixSize; else ErrInvalidSize.
//   - Stage 2: allocate n zero rows of length n.
//
// Errors:
//   - ErrInvalidSize (dimension contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T Number](n int) (*Matrix[T], error) {
	if err := ValidateSize(n); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxNew, n, err)
	}

	return newUnchecked[T](n), nil
}

// newUnchecked allocates an n×n zero matrix; n must already be validated.
func newUnchecked[T Number](n int) *Matrix[T] {
	rows := make([]*vector.Vector[T], n)
	for i := range rows {
		rows[i] = newRowUnchecked[T](n)
	}

	return &Matrix[T]{n: n, rows: rows}
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²).
//
// AI-Hints: Use as a neutral element for Mul in tests and iterative schemes.
func Identity[T Number](n int) (*Matrix[T], error) {
	if err := ValidateSize(n); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxIdentity, n, err)
	}
	m := newUnchecked[T](n)
	for i := 0; i < n; i++ {
		*m.rows[i].Elem(i) = 1
	}

	return m, nil
}

// FromRows builds a matrix holding a copy of rows.
//
// Errors:
//   - ErrInvalidSize when len(rows) is 0 or exceeds MaxMatrixSize.
//   - ErrSizeMismatch when some row length differs from len(rows).
//
// Complexity: O(n²).
func FromRows[T Number](rows [][]T) (*Matrix[T], error) {
	n := len(rows)
	if err := ValidateSize(n); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	out := make([]*vector.Vector[T], n)
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("Matrix.%s: row %d has length %d: %w", ctxFromRows, i, len(r), ErrSizeMismatch)
		}
		v, err := vector.FromSlice(r)
		if err != nil {
			return nil, matrixErrorf(ctxFromRows, err)
		}
		out[i] = v
	}

	return &Matrix[T]{n: n, rows: out}, nil
}

// Size returns the dimension. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Size() int { return m.n }

// Row returns row i WITHOUT bounds validation.
// An out-of-range i panics in the runtime; use RowAt for untrusted input.
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) *vector.Vector[T] { return m.rows[i] }

// RowAt returns row i or ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) RowAt(i int) (*vector.Vector[T], error) {
	if err := ValidateIndex(i, m.n); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRowAt, i, err)
	}

	return m.rows[i], nil
}

// At returns a pointer to element (i, j) or ErrIndexOutOfRange.
// The pointer allows in-place mutation.
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (*T, error) {
	if err := m.checkCell(i, j); err != nil {
		return nil, cellErrorf(ctxAt, i, j, err)
	}

	return m.rows[i].Elem(j), nil
}

// Get returns the value at (i, j) or ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Get(i, j int) (T, error) {
	if err := m.checkCell(i, j); err != nil {
		var zero T
		return zero, cellErrorf(ctxGet, i, j, err)
	}

	return *m.rows[i].Elem(j), nil
}

// Set stores x at (i, j) or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := m.checkCell(i, j); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}
	*m.rows[i].Elem(j) = x

	return nil
}

// checkCell validates both coordinates against the dimension.
func (m *Matrix[T]) checkCell(i, j int) error {
	if err := ValidateIndex(i, m.n); err != nil {
		return err
	}

	return ValidateIndex(j, m.n)
}

// Clone returns a deep copy: every row is cloned.
// Complexity: O(n²) time and memory.
func (m *Matrix[T]) Clone() *Matrix[T] {
	rows := make([]*vector.Vector[T], m.n)
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix[T]{n: m.n, rows: rows}
}

// Assign makes m a deep copy of src.
// MAIN DESCRIPTION:
//   - Same rules as vector.Assign, applied per row.
//
// Implementation:
//   - Stage 1: src == m → no-op.
//   - Stage 2: different dimension → replace the row table with n fresh rows.
//   - Stage 3: Assign each row from src (equal-length path keeps row storage).
//
// Errors:
//   - ErrNilMatrix when src is nil.
//
// Complexity:
//   - Time O(n²).
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	if m == src {
		return nil
	}
	if m.n != src.n {
		m.rows = make([]*vector.Vector[T], src.n)
		m.n = src.n
		for i, r := range src.rows {
			m.rows[i] = r.Clone()
		}

		return nil
	}
	for i, r := range src.rows {
		if err := m.rows[i].Assign(r); err != nil {
			return matrixErrorf(ctxAssign, err)
		}
	}

	return nil
}

// Equal reports whether m and o have the same dimension and equal rows.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(n²).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool { return !m.Equal(o) }

// Slices returns a copy of the elements as a [][]T (row-major).
// Complexity: O(n²).
func (m *Matrix[T]) Slices() [][]T {
	out := make([][]T, m.n)
	for i, r := range m.rows {
		out[i] = r.Slice()
	}

	return out
}

// String renders one row per line using the vector format:
//
//	[1, 2]
//	[3, 4]
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for _, r := range m.rows {
		b.WriteString(r.String())
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
