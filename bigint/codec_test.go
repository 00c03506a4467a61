package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeBESignedScenarioS5(t *testing.T) {
	b := []byte{0xFF, 0xFF, 0xFF, 0xFE}
	z := New(32)
	DecodeBESigned(z, b)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(-2), ToS64(z))

	out := make([]byte, 4)
	EncodeBE(z, out)
	require.Equal(t, b, out)

	u := New(32)
	DecodeBEUnsigned(u, b)
	require.True(t, u.IsNaN().Reveal())

	u33 := New(33)
	DecodeBEUnsigned(u33, b)
	require.False(t, u33.IsNaN().Reveal())
	require.Equal(t, uint64(4294967294), ToU64(u33))
}

func TestDecodeEmpty(t *testing.T) {
	s := New(16)
	DecodeBESigned(s, nil)
	require.True(t, s.IsNaN().Reveal())

	u := New(16)
	DecodeBEUnsigned(u, nil)
	require.False(t, u.IsNaN().Reveal())
	require.Equal(t, int64(0), ToS64(u))
}

func TestEncodeNaNEmitsZeros(t *testing.T) {
	z := New(32)
	out := []byte{1, 2, 3, 4}
	EncodeBE(z, out) // z is still NaN (fresh New)
	require.Equal(t, []byte{0, 0, 0, 0}, out)
}

func TestLittleEndianRoundTrip(t *testing.T) {
	z := New(32)
	SetS64(z, -12345)
	out := make([]byte, 4)
	EncodeLE(z, out)

	got := New(32)
	DecodeLESigned(got, out)
	require.False(t, got.IsNaN().Reveal())
	require.Equal(t, int64(-12345), ToS64(got))
}

func TestDecodeTruncWrapsInsteadOfNaN(t *testing.T) {
	b := []byte{0x01, 0x00} // 256, needs 10 signed bits
	z := New(8)
	DecodeBESignedTrunc(z, b)
	require.False(t, z.IsNaN().Reveal())
	require.Equal(t, int64(0), ToS64(z)) // 256 mod 256 = 0
}

func TestRoundTripBEVariousWidths(t *testing.T) {
	widths := []int{8, 16, 32, 64, 129}
	for _, w := range widths {
		z := New(w)
		SetS64(z, 42)
		n := (w + 7) / 8
		out := make([]byte, n)
		EncodeBE(z, out)
		got := New(w)
		DecodeBESignedTrunc(got, out)
		require.Equal(t, ToS64(z), ToS64(got), "width %d", w)
	}
}
