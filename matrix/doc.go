// Package matrix provides Matrix[T], a square matrix built from owned
// vector.Vector rows.
//
// The matrix package provides:
//
//   - Validated construction (New, Identity, FromRows) bounded by MaxMatrixSize.
//   - Deep-copy value semantics: Clone and Assign copy every row, so two
//     matrices never share storage.
//   - Element-wise Add/Sub and scalar MulScalar delegated row by row to the
//     vector arithmetic, plus Mul (row-by-column product), MulVec and Transpose.
//
// Row arithmetic errors are the vector sentinels; this package re-exports them
// as ErrInvalidSize, ErrIndexOutOfRange and ErrSizeMismatch, so errors.Is
// works against either package.
//
// See the examples in this package for usage patterns.
package matrix
