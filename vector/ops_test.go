// Package vector_test contains unit tests for Vector arithmetic.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/tmatrix/vector"
	"github.com/stretchr/testify/require"
)

// TestScalarOps checks scalar +, -, * and that the source is not mutated.
func TestScalarOps(t *testing.T) {
	v := fillIndex(mustVector[int](t, 3))

	require.Equal(t, []int{5, 6, 7}, v.AddScalar(5).Slice())
	require.Equal(t, []int{-5, -4, -3}, v.SubScalar(5).Slice())
	require.Equal(t, []int{0, 5, 10}, v.MulScalar(5).Slice())
	require.Equal(t, []int{0, 2, 4}, vector.Scale(v, 2).Slice())

	require.Equal(t, []int{0, 1, 2}, v.Slice()) // operand untouched
}

// TestScalarOpsReturnFreshStorage ensures results never alias the source.
func TestScalarOpsReturnFreshStorage(t *testing.T) {
	v := mustVector[float64](t, 2)
	for _, out := range []*vector.Vector[float64]{v.AddScalar(0), v.SubScalar(0), v.MulScalar(1)} {
		require.True(t, out.Equal(v))
		require.NotSame(t, v.Elem(0), out.Elem(0))
	}
}

// TestAddSubDotEqualSize covers {0,1,2} ∘ {0,1,2} for +, -, ·.
func TestAddSubDotEqualSize(t *testing.T) {
	v := fillIndex(mustVector[int](t, 3))
	v2 := fillIndex(mustVector[int](t, 3))

	sum, err := v.Add(v2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4}, sum.Slice())

	diff, err := v.Sub(v2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, diff.Slice())

	dot, err := v.Dot(v2)
	require.NoError(t, err)
	require.Equal(t, 5, dot) // 0·0 + 1·1 + 2·2

	// Operands untouched.
	require.Equal(t, []int{0, 1, 2}, v.Slice())
	require.Equal(t, []int{0, 1, 2}, v2.Slice())
}

// TestAssignFromResult mirrors the "v3 = v + v2" idiom.
func TestAssignFromResult(t *testing.T) {
	v := fillIndex(mustVector[int](t, 3))
	v3 := mustVector[int](t, 3)

	sum, err := v.Add(v)
	require.NoError(t, err)
	require.NoError(t, v3.Assign(sum))
	require.Equal(t, []int{0, 2, 4}, v3.Slice())
}

// TestBinaryOpsSizeMismatch ensures +, -, · fail with ErrSizeMismatch in both operand orders.
func TestBinaryOpsSizeMismatch(t *testing.T) {
	cases := []struct {
		name string
		a, b int
	}{
		{"3vs5", 3, 5},
		{"5vs3", 5, 3},
		{"3vs7", 3, 7},
		{"7vs3", 7, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustVector[int](t, tc.a)
			b := mustVector[int](t, tc.b)

			out, err := a.Add(b)
			require.ErrorIs(t, err, vector.ErrSizeMismatch)
			require.Nil(t, out)

			out, err = a.Sub(b)
			require.ErrorIs(t, err, vector.ErrSizeMismatch)
			require.Nil(t, out)

			_, err = a.Dot(b)
			require.ErrorIs(t, err, vector.ErrSizeMismatch)
		})
	}
}

// TestBinaryOpsNilOperand ensures nil operands surface ErrNilVector.
func TestBinaryOpsNilOperand(t *testing.T) {
	v := mustVector[int](t, 3)

	_, err := v.Add(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = v.Sub(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = v.Dot(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)

	_, err = vector.Sum(nil, v)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = vector.Diff(nil, v)
	require.ErrorIs(t, err, vector.ErrNilVector)
	_, err = vector.DotProduct(nil, v)
	require.ErrorIs(t, err, vector.ErrNilVector)
}

// TestFacades verifies the package-level aliases agree with the methods.
func TestFacades(t *testing.T) {
	a := mustFromSlice(t, 1.0, 2.0, 3.0)
	b := mustFromSlice(t, 0.5, 0.5, 0.5)

	sum, err := vector.Sum(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 2.5, 3.5}, sum.Slice())

	diff, err := vector.Diff(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.5, 2.5}, diff.Slice())

	dot, err := vector.DotProduct(a, b)
	require.NoError(t, err)
	require.InDelta(t, 3.0, dot, 1e-12)
}

// TestUnsignedSub checks subtraction on unsigned elements keeps modular semantics.
func TestUnsignedSub(t *testing.T) {
	a := mustFromSlice[uint8](t, 5, 0)
	b := mustFromSlice[uint8](t, 3, 1)

	d, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, []uint8{2, 255}, d.Slice())
}
