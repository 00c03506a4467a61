package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulBasic(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{1, 1}, {3, 4}, {-3, 4}, {-3, -4}, {0, 99}, {12, 10},
	}
	for _, c := range cases {
		a, b := mk(16, c.a), mk(16, c.b)
		z := New(16)
		Mul(z, a, b)
		require.False(t, z.IsNaN().Reveal())
		require.Equal(t, c.a*c.b, ToS64(z))
	}
}

func TestMulOverflowGoesNaN(t *testing.T) {
	a := mk(8, 20)
	b := mk(8, 10) // 200, outside int8 range
	z := New(8)
	Mul(z, a, b)
	require.True(t, z.IsNaN().Reveal())

	MulTrunc(z, a, b)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(-56), ToS64(z)) // 200 mod 256, as int8
}

func TestMulMinValueTimesNegOne(t *testing.T) {
	a := mk(8, -128)
	b := mk(8, -1)
	z := New(8)
	Mul(z, a, b)
	require.True(t, z.IsNaN().Reveal()) // 128 doesn't fit in [-128,127]

	MulTrunc(z, a, b)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(-128), ToS64(z))
}

func TestMulNaNPropagates(t *testing.T) {
	a := New(16) // NaN
	b := mk(16, 2)
	z := New(16)
	Mul(z, a, b)
	require.True(t, z.IsNaN().Reveal())
}

func TestMulShapeMismatch(t *testing.T) {
	a := mk(8, 1)
	b := mk(16, 1)
	z := New(16)
	Mul(z, a, b)
	require.True(t, z.IsNaN().Reveal())
}

func TestMulAliasing(t *testing.T) {
	a := mk(16, 7)
	z := New(16)
	Set(z, a)
	Mul(z, z, z) // z aliases both operands
	require.Equal(t, int64(49), ToS64(z))
}
