// SPDX-License-Identifier: MIT

// Package vector: element constraint and size limits.
// This file contains ONLY the domain-facing type set and the documented
// limits; storage lives in vector.go, arithmetic in ops.go.
package vector

// MaxVectorSize is the largest length accepted by New and FromSlice.
// It is part of the public contract: lengths above it fail with ErrInvalidSize.
const MaxVectorSize = 100_000_000

// Number is the set of element types a Vector may hold: every built-in
// integer and floating-point kind, including named types derived from them.
// The set is closed under +, -, * and ==, which is all the arithmetic needs.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
