package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetGetS64RoundTrip(t *testing.T) {
	cases := []struct {
		width int
		v     int64
	}{
		{8, 0}, {8, 1}, {8, -1}, {8, 127}, {8, -128},
		{32, 1<<31 - 1}, {32, -1 << 31},
		{64, 1<<63 - 1}, {64, -1 << 63},
		{129, 123456789},
	}
	for _, c := range cases {
		z := New(c.width)
		SetS64(z, c.v)
		require.False(t, z.IsNaN().Reveal())
		require.Equal(t, c.v, ToS64(z))
	}
}

func TestSetS64OutOfRangeIsNaN(t *testing.T) {
	z := New(8)
	SetS64(z, 128)
	require.True(t, z.IsNaN().Reveal())
	SetS64(z, -129)
	require.True(t, z.IsNaN().Reveal())
}

func TestSetS64TruncWraps(t *testing.T) {
	z := New(8)
	SetS64Trunc(z, 200)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(-56), ToS64(z)) // 200 mod 256 = 200 -> signed -56
}

func TestSetU64RoundTrip(t *testing.T) {
	z := New(8)
	SetU64(z, 100)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, uint64(100), ToU64(z))

	SetU64(z, 200) // doesn't fit positive in 8-bit signed (max 127)
	require.True(t, z.IsNaN().Reveal())
}

func TestSetU64Trunc(t *testing.T) {
	z := New(8)
	SetU64Trunc(z, 300) // 300 mod 256 = 44
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(44), ToS64(z))
}

func TestToS32OutOfRangeReturnsZero(t *testing.T) {
	z := New(64)
	SetS64(z, 1<<40)
	require.Equal(t, int32(0), ToS32(z))
}

func TestToU32OnNegativeReturnsZero(t *testing.T) {
	z := New(32)
	SetS32(z, -1)
	require.Equal(t, uint32(0), ToU32(z))
}

func TestSetCopySameShape(t *testing.T) {
	a := New(16)
	SetS32(a, -5)
	b := New(16)
	Set(b, a)
	require.False(t, b.IsNaN().Reveal())
	require.Equal(t, int64(-5), ToS64(b))
}

func TestSetCopyShapeMismatchIsNaN(t *testing.T) {
	a := New(16)
	SetS32(a, -5)
	b := New(32)
	Set(b, a)
	require.True(t, b.IsNaN().Reveal())
}

func TestNewIsInitiallyNaN(t *testing.T) {
	z := New(16)
	require.True(t, z.IsNaN().Reveal())
}
