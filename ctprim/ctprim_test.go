package ctprim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pornin/cttk/ctbool"
)

var (
	trueB  = ctbool.True
	falseB = ctbool.False
)

func TestMux32(t *testing.T) {
	require.Equal(t, uint32(7), Mux32(trueB, 7, 9))
	require.Equal(t, uint32(9), Mux32(falseB, 7, 9))
}

func TestEqNeq(t *testing.T) {
	require.True(t, Eq(3, 3).Reveal())
	require.False(t, Eq(3, 4).Reveal())
	require.True(t, Neq(3, 4).Reveal())
	require.True(t, Eq0(0).Reveal())
	require.False(t, Eq0(1).Reveal())
}

func TestLtGt(t *testing.T) {
	cases := []struct{ x, y uint32 }{
		{0, 0}, {0, 1}, {1, 0}, {5, 5}, {5, 6}, {6, 5},
		{0, 0xFFFFFFFF}, {0xFFFFFFFF, 0}, {0x7FFFFFFF, 0x80000000},
	}
	for _, c := range cases {
		require.Equal(t, c.x < c.y, Lt(c.x, c.y).Reveal(), "Lt(%d,%d)", c.x, c.y)
		require.Equal(t, c.x > c.y, Gt(c.x, c.y).Reveal(), "Gt(%d,%d)", c.x, c.y)
		require.Equal(t, c.x <= c.y, Leq(c.x, c.y).Reveal(), "Leq(%d,%d)", c.x, c.y)
		require.Equal(t, c.x >= c.y, Geq(c.x, c.y).Reveal(), "Geq(%d,%d)", c.x, c.y)
	}
}

func TestBitLength32(t *testing.T) {
	cases := []struct {
		x    uint32
		want uint32
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {0xFFFFFFFF, 32}, {0x80000000, 32}, {0x7FFFFFFF, 31},
	}
	for _, c := range cases {
		require.Equal(t, c.want, BitLength32(c.x), "BitLength32(%#x)", c.x)
	}
}

func TestMulU32WideMatchesNative(t *testing.T) {
	cases := []struct{ x, y uint32 }{
		{0, 0}, {1, 1}, {0xFFFFFFFF, 0xFFFFFFFF}, {12345, 67890}, {1, 0xFFFFFFFF},
	}
	for _, c := range cases {
		want := uint64(c.x) * uint64(c.y)
		require.Equal(t, want, mulU32WideShiftAdd(c.x, c.y))
		UseHardwareMul = true
		require.Equal(t, want, MulU32Wide(c.x, c.y))
		UseHardwareMul = false
		require.Equal(t, want, MulU32Wide(c.x, c.y))
	}
}

