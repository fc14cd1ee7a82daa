// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (wrapped with context)
// and tests MUST check them via errors.Is.

package matrix

import (
	"errors"

	"github.com/katalvlaran/tmatrix/vector"
)

// SHARED SENTINELS
// ----------------
// A matrix delegates row arithmetic and element access to vector.Vector, so the
// size/index/mismatch conditions are the vector sentinels themselves. Re-export
// them so callers of this package need not import vector to match errors, and
// so errors.Is(err, vector.ErrSizeMismatch) stays true for matrix errors.

var (
	// ErrInvalidSize is returned when a dimension is non-positive or exceeds MaxMatrixSize.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrIndexOutOfRange indicates that a row or column index is outside [0, Size()).
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrSizeMismatch indicates operands of incompatible dimensions,
	// e.g. Add of 3×3 and 4×4, or ragged rows in FromRows.
	ErrSizeMismatch = vector.ErrSizeMismatch
)

// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
var ErrNilMatrix = errors.New("matrix: nil matrix")
