// SPDX-License-Identifier: MIT

// Package matrix: element constraint and dimension limits.
// This file intentionally contains ONLY domain-facing types and constants.
// Errors live in errors.go, storage in matrix.go.
package matrix

import "github.com/katalvlaran/tmatrix/vector"

// MaxMatrixSize is the largest dimension accepted by New, Identity and FromRows.
// MaxMatrixSize² equals vector.MaxVectorSize, so a full matrix never holds more
// elements than the largest vector.
const MaxMatrixSize = 10_000

// Number is the element constraint shared with the vector package.
type Number = vector.Number
