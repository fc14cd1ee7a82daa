// Package vector provides Vector[T], an owning, bounds-validated, fixed-length
// array of numbers with value semantics.
//
// What & Why:
//
//	Vector[T] is the building block of the matrix package. Every vector owns
//	its storage exclusively: Clone and Assign always deep-copy, so mutating one
//	vector never affects another. Construction validates the length against
//	MaxVectorSize and reports ErrInvalidSize instead of clamping.
//
// Access modes:
//
//	Elem(i) is the trusted fast path: no validation, a bad index panics in the
//	runtime. At(i), Get(i) and Set(i, x) validate and return ErrIndexOutOfRange.
//
// Arithmetic:
//
//	AddScalar/SubScalar/MulScalar never fail. Add/Sub/Dot return
//	ErrSizeMismatch for operands of different length. All results are freshly
//	allocated; operands are never mutated.
//
// Complexity:
//
//	Len and the accessors run in O(1); Clone, Assign, Equal and arithmetic are O(n).
package vector
