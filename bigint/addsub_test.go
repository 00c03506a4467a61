package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowScenarioS2(t *testing.T) {
	a := mk(8, 100)
	b := mk(8, 100)
	z := New(8)
	Add(z, a, b)
	require.True(t, z.IsNaN().Reveal())

	AddTrunc(z, a, b)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(-56), ToS64(z))
}

func TestAddBasic(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{1, 2}, {-1, -2}, {0, 0}, {127, -1}, {-128, 1},
	}
	for _, c := range cases {
		a, b := mk(16, c.a), mk(16, c.b)
		z := New(16)
		Add(z, a, b)
		require.False(t, z.IsNaN().Reveal())
		require.Equal(t, c.a+c.b, ToS64(z))
	}
}

func TestSubIsAddInverse(t *testing.T) {
	a := mk(16, 1000)
	b := mk(16, 400)
	sum := New(16)
	Add(sum, a, b)
	diff := New(16)
	Sub(diff, sum, b)
	require.Equal(t, ToS64(a), ToS64(diff))
}

func TestNegMinValueIsNaN(t *testing.T) {
	x := mk(8, -128)
	z := New(8)
	Neg(z, x)
	require.True(t, z.IsNaN().Reveal())

	NegTrunc(z, x)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(-128), ToS64(z))
}

func TestNegOrdinary(t *testing.T) {
	x := mk(16, 42)
	z := New(16)
	Neg(z, x)
	require.Equal(t, int64(-42), ToS64(z))
}

func TestAddNaNPropagates(t *testing.T) {
	a := New(16) // NaN
	b := mk(16, 1)
	z := New(16)
	Add(z, a, b)
	require.True(t, z.IsNaN().Reveal())
}

func TestAddShapeMismatch(t *testing.T) {
	a := mk(8, 1)
	b := mk(16, 1)
	z := New(16)
	Add(z, a, b)
	require.True(t, z.IsNaN().Reveal())
}
