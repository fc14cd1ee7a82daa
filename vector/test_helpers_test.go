// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for constructor and arithmetic tests.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/tmatrix/vector"
	"github.com/stretchr/testify/require"
)

// mustVector ALLOCATES a zero vector of length n or fails the test.
func mustVector[T vector.Number](t testing.TB, n int) *vector.Vector[T] {
	t.Helper()
	v, err := vector.New[T](n)
	require.NoError(t, err, "New(%d)", n)

	return v
}

// mustFromSlice builds a vector from xs or fails the test.
func mustFromSlice[T vector.Number](t testing.TB, xs ...T) *vector.Vector[T] {
	t.Helper()
	v, err := vector.FromSlice(xs)
	require.NoError(t, err, "FromSlice(%v)", xs)

	return v
}

// fillIndex fills v with v[i] = i through the unchecked accessor.
func fillIndex(v *vector.Vector[int]) *vector.Vector[int] {
	for i := 0; i < v.Len(); i++ {
		*v.Elem(i) = i
	}

	return v
}
