package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tmatrix/matrix"
)

// ExampleMatrix_Mul demonstrates construction, product and transpose.
func ExampleMatrix_Mul() {
	// 1) Build A and B from literal rows.
	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})

	// 2) Row-by-column product.
	p, _ := a.Mul(b)
	fmt.Print(p)

	// 3) Transpose never mutates the source.
	fmt.Print(a.Transpose())

	// Output:
	// [19, 22]
	// [43, 50]
	// [1, 3]
	// [2, 4]
}

// ExampleMatrix_Add shows the dimension guard.
func ExampleMatrix_Add() {
	a, _ := matrix.New[int](3)
	b, _ := matrix.New[int](4)

	_, err := a.Add(b)
	fmt.Println("mismatch:", errors.Is(err, matrix.ErrSizeMismatch))

	// Output:
	// mismatch: true
}
