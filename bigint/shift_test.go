package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLshBasic(t *testing.T) {
	x := mk(16, 5)
	z := New(16)
	Lsh(z, x, 3)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(40), ToS64(z))
}

func TestLshOverflowGoesNaN(t *testing.T) {
	x := mk(8, 5) // 0b0000_0101, needs shift<=4 to stay in range
	z := New(8)
	Lsh(z, x, 6)
	require.True(t, z.IsNaN().Reveal())

	LshTrunc(z, x, 6)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(64), ToS64(z)) // 5*64 = 320, mod 256 = 64
}

func TestLshZeroNeverOverflows(t *testing.T) {
	x := mk(8, 0)
	z := New(8)
	Lsh(z, x, 100)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(0), ToS64(z))
}

func TestRshArithmeticSignExtends(t *testing.T) {
	x := mk(16, -8)
	z := New(16)
	Rsh(z, x, 2)
	require.Equal(t, int64(-2), ToS64(z))

	y := mk(16, 8)
	Rsh(z, y, 2)
	require.Equal(t, int64(2), ToS64(z))
}

func TestRshNeverOverflows(t *testing.T) {
	x := mk(8, -128)
	z := New(8)
	Rsh(z, x, 50)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(-1), ToS64(z))
}

func TestLshProtMatchesLsh(t *testing.T) {
	x := mk(32, 123)
	want := New(32)
	Lsh(want, x, 9)
	got := New(32)
	LshProt(got, x, 9)
	require.Equal(t, ToS64(want), ToS64(got))
	require.Equal(t, want.IsNaN().Reveal(), got.IsNaN().Reveal())
}

func TestRshProtMatchesRsh(t *testing.T) {
	x := mk(32, -123456)
	want := New(32)
	Rsh(want, x, 5)
	got := New(32)
	RshProt(got, x, 5)
	require.Equal(t, ToS64(want), ToS64(got))
}

func TestShiftNaNPropagates(t *testing.T) {
	x := New(16) // NaN
	z := New(16)
	Lsh(z, x, 1)
	require.True(t, z.IsNaN().Reveal())
	Rsh(z, x, 1)
	require.True(t, z.IsNaN().Reveal())
}

func TestShiftNegativeCountIsNaN(t *testing.T) {
	x := mk(16, 4)
	z := New(16)
	Lsh(z, x, -1)
	require.True(t, z.IsNaN().Reveal())
}
