// Package tmatrix is a small numeric container library: a generic,
// bounds-validated vector and a square matrix built from it.
//
// What is inside?
//
//	vector/  Vector[T]: owning fixed-length array with checked (At/Get/Set)
//	          and unchecked (Elem) access, deep Clone/Assign, Equal, scalar
//	          and element-wise arithmetic, Dot.
//	matrix/  Matrix[T]: n owned Vector rows of length n; Add/Sub/MulScalar
//	          row by row, Mul (row-by-column product), MulVec, Transpose.
//
// Guarantees:
//
//   - Value semantics: no two containers ever share storage.
//   - Contract violations are returned as wrapped sentinel errors
//     (ErrInvalidSize, ErrIndexOutOfRange, ErrSizeMismatch) matched with
//     errors.Is; nothing is clamped, truncated or logged.
//   - Arithmetic never mutates its operands.
//
// Quick example:
//
//	v, _ := vector.FromSlice([]int{0, 1, 2})
//	dot, _ := v.Dot(v) // 5
//
//	go get github.com/katalvlaran/tmatrix
package tmatrix
