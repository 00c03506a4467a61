package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivRemScenarioS3(t *testing.T) {
	a := mk(8, -128)
	b := mk(8, -1)
	q, r := New(8), New(8)
	DivRem(q, r, a, b)
	require.True(t, q.IsNaN().Reveal())
	require.False(t, r.IsNaN().Reveal())
	require.Equal(t, int64(0), ToS64(r))

	b2 := mk(8, 2)
	DivRem(q, r, a, b2)
	require.False(t, q.IsNaN().Reveal())
	require.Equal(t, int64(-64), ToS64(q))
	require.Equal(t, int64(0), ToS64(r))
}

func TestDivRemAndModScenarioS4(t *testing.T) {
	a := mk(16, -7)
	b := mk(16, 3)
	q, r := New(16), New(16)
	DivRem(q, r, a, b)
	require.Equal(t, int64(-2), ToS64(q))
	require.Equal(t, int64(-1), ToS64(r))

	m := New(16)
	Mod(m, a, b)
	require.Equal(t, int64(2), ToS64(m))
}

func TestDivRemBasic(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{7, 3}, {-7, 3}, {7, -3}, {-7, -3}, {0, 5}, {100, 10},
	}
	for _, c := range cases {
		a, b := mk(16, c.a), mk(16, c.b)
		q, r := New(16), New(16)
		DivRem(q, r, a, b)
		require.False(t, q.IsNaN().Reveal())
		require.Equal(t, c.a/c.b, ToS64(q), "q for %d/%d", c.a, c.b)
		require.Equal(t, c.a%c.b, ToS64(r), "r for %d%%%d", c.a, c.b)
	}
}

func TestModAlwaysNonNegative(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{-7, 3}, {7, -3}, {-7, -3}, {7, 3}, {0, 5},
	}
	for _, c := range cases {
		a, b := mk(16, c.a), mk(16, c.b)
		m := New(16)
		Mod(m, a, b)
		require.False(t, m.IsNaN().Reveal())
		got := ToS64(m)
		require.GreaterOrEqual(t, got, int64(0))
		absB := c.b
		if absB < 0 {
			absB = -absB
		}
		require.Less(t, got, absB)
	}
}

func TestDivByZeroIsNaN(t *testing.T) {
	a := mk(8, 5)
	b := mk(8, 0)
	q, r := New(8), New(8)
	DivRem(q, r, a, b)
	require.True(t, q.IsNaN().Reveal())
	require.True(t, r.IsNaN().Reveal())

	m := New(8)
	Mod(m, a, b)
	require.True(t, m.IsNaN().Reveal())
}

func TestDivRemNaNPropagates(t *testing.T) {
	a := New(16) // NaN
	b := mk(16, 3)
	q, r := New(16), New(16)
	DivRem(q, r, a, b)
	require.True(t, q.IsNaN().Reveal())
	require.True(t, r.IsNaN().Reveal())
}

func TestDivRemShapeMismatch(t *testing.T) {
	a := mk(8, 1)
	b := mk(16, 1)
	q, r := New(16), New(16)
	DivRem(q, r, a, b)
	require.True(t, q.IsNaN().Reveal())
}
