// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	square := func(n int) *matrix.Matrix[float64] {
		m, err := matrix.New[float64](n)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Matrix[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, square(2), matrix.ErrNilMatrix},
		{"second nil", square(2), nil, matrix.ErrNilMatrix},
		{"same shape", square(3), square(3), nil},
		{"different shape", square(2), square(3), matrix.ErrSizeMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
		})
	}
}

// TestValidateMulCompatible mirrors the shape test for the product rule.
func TestValidateMulCompatible(t *testing.T) {
	a := mustMatrix[int](t, 2)
	b := mustMatrix[int](t, 2)
	c := mustMatrix[int](t, 3)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, c), matrix.ErrSizeMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, c), matrix.ErrNilMatrix)
}

// TestValidateSizeAndIndex checks the scalar guards.
func TestValidateSizeAndIndex(t *testing.T) {
	require.NoError(t, matrix.ValidateSize(1))
	require.NoError(t, matrix.ValidateSize(matrix.MaxMatrixSize))
	require.ErrorIs(t, matrix.ValidateSize(0), matrix.ErrInvalidSize)
	require.ErrorIs(t, matrix.ValidateSize(matrix.MaxMatrixSize+1), matrix.ErrInvalidSize)

	require.NoError(t, matrix.ValidateIndex(0, 2))
	require.ErrorIs(t, matrix.ValidateIndex(2, 2), matrix.ErrIndexOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(-1, 2), matrix.ErrIndexOutOfRange)
}
