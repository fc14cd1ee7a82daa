// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructor and kernel tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// mustMatrix ALLOCATES an n×n zero matrix or fails the test.
func mustMatrix[T matrix.Number](t testing.TB, n int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](n)
	require.NoError(t, err, "New(%d)", n)

	return m
}

// mustRows builds a matrix from literal rows or fails the test.
func mustRows[T matrix.Number](t testing.TB, rows ...[]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// fillSeq sets m[i,j] = i*Size()+j through the unchecked row accessor.
func fillSeq(m *matrix.Matrix[int]) *matrix.Matrix[int] {
	n := m.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			*m.Row(i).Elem(j) = i*n + j
		}
	}

	return m
}
