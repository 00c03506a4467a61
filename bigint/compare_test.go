package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pornin/cttk/ctbool"
)

func mk(width int, v int64) *Int {
	z := New(width)
	SetS64(z, v)
	return z
}

func TestCmpOrdering(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{0, 0}, {1, 2}, {2, 1}, {-1, 1}, {1, -1}, {-5, -5}, {-128, 127},
	}
	for _, c := range cases {
		a, b := mk(16, c.a), mk(16, c.b)
		want := 0
		if c.a < c.b {
			want = -1
		} else if c.a > c.b {
			want = 1
		}
		require.Equal(t, want, Cmp(a, b), "Cmp(%d,%d)", c.a, c.b)
		require.Equal(t, c.a == c.b, Eq(a, b).Reveal())
		require.Equal(t, c.a != c.b, Neq(a, b).Reveal())
		require.Equal(t, c.a < c.b, Lt(a, b).Reveal())
		require.Equal(t, c.a <= c.b, Leq(a, b).Reveal())
		require.Equal(t, c.a > c.b, Gt(a, b).Reveal())
		require.Equal(t, c.a >= c.b, Geq(a, b).Reveal())
	}
}

func TestCmpNaNAlwaysFalse(t *testing.T) {
	a := New(16) // fresh -> NaN
	b := mk(16, 5)
	require.False(t, Eq(a, b).Reveal())
	require.False(t, Eq(a, a).Reveal()) // not even NaN == NaN
	require.Equal(t, 0, Cmp(a, b))
}

func TestCmpShapeMismatch(t *testing.T) {
	a := mk(16, 1)
	b := mk(32, 1)
	require.Equal(t, 0, Cmp(a, b))
	require.False(t, Eq(a, b).Reveal())
}

func TestSignZeroFamily(t *testing.T) {
	require.Equal(t, -1, Sign(mk(8, -3)))
	require.Equal(t, 0, Sign(mk(8, 0)))
	require.Equal(t, 1, Sign(mk(8, 3)))

	require.True(t, Eq0(mk(8, 0)).Reveal())
	require.True(t, Neq0(mk(8, 3)).Reveal())
	require.True(t, Lt0(mk(8, -1)).Reveal())
	require.True(t, Gt0(mk(8, 1)).Reveal())
	require.True(t, Leq0(mk(8, 0)).Reveal())
	require.True(t, Geq0(mk(8, 0)).Reveal())
}

func TestCopyCondCopy(t *testing.T) {
	a := mk(16, 7)
	b := New(16)
	CondCopy(ctbool.False, b, a)
	require.True(t, b.IsNaN().Reveal())
	CondCopy(ctbool.True, b, a)
	require.False(t, b.IsNaN().Reveal())
	require.Equal(t, int64(7), ToS64(b))
}

func TestSwapCondSwap(t *testing.T) {
	a := mk(16, 1)
	b := mk(16, 2)
	CondSwap(ctbool.False, a, b)
	require.Equal(t, int64(1), ToS64(a))
	require.Equal(t, int64(2), ToS64(b))
	CondSwap(ctbool.True, a, b)
	require.Equal(t, int64(2), ToS64(a))
	require.Equal(t, int64(1), ToS64(b))

	Swap(a, b)
	require.Equal(t, int64(1), ToS64(a))
	require.Equal(t, int64(2), ToS64(b))
}

func TestMux(t *testing.T) {
	a := mk(16, 10)
	b := mk(16, 20)
	z := New(16)
	Mux(ctbool.True, z, a, b)
	require.Equal(t, int64(10), ToS64(z))
	Mux(ctbool.False, z, a, b)
	require.Equal(t, int64(20), ToS64(z))
}
