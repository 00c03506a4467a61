package obuf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pornin/cttk/ctbool"
)

func TestCondCopyOverlapForward(t *testing.T) {
	// spec.md S6: buf = [1,2,3,4,5]; cond_copy(true, &buf[1], &buf[0], 4)
	// -> [1,1,2,3,4], i.e. memmove semantics.
	buf := []byte{1, 2, 3, 4, 5}
	CondCopy(ctbool.True, buf[1:5], buf[0:4])
	require.Equal(t, []byte{1, 1, 2, 3, 4}, buf)
}

func TestCondCopyFalseLeavesOverlapUnchanged(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	want := append([]byte(nil), buf...)
	CondCopy(ctbool.False, buf[1:5], buf[0:4])
	require.Equal(t, want, buf)
}

func TestCondCopyMatchesMemmove(t *testing.T) {
	src := []byte{10, 20, 30, 40}
	dst := []byte{1, 2, 3, 4}
	CondCopy(ctbool.True, dst, src)
	require.Equal(t, src, dst)
}

func TestCondSwap(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{9, 8, 7}
	CondSwap(ctbool.True, a, b)
	require.Equal(t, []byte{9, 8, 7}, a)
	require.Equal(t, []byte{1, 2, 3}, b)

	CondSwap(ctbool.False, a, b)
	require.Equal(t, []byte{9, 8, 7}, a)
	require.Equal(t, []byte{1, 2, 3}, b)
}

func TestArrayReadWrite(t *testing.T) {
	a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9} // 5 elements of size 2
	dst := make([]byte, 2)
	ArrayRead(dst, a, 2, 5, 3)
	require.Equal(t, []byte{6, 7}, dst)

	ArrayWrite(a, 2, 5, 0, []byte{100, 101})
	require.Equal(t, byte(100), a[0])
	require.Equal(t, byte(101), a[1])

	ArrayRead(dst, a, 2, 5, 0)
	require.Equal(t, []byte{100, 101}, dst)
}

func TestArrayEq(t *testing.T) {
	require.True(t, ArrayEq([]byte{1, 2, 3}, []byte{1, 2, 3}).Reveal())
	require.False(t, ArrayEq([]byte{1, 2, 3}, []byte{1, 2, 4}).Reveal())
	require.False(t, ArrayEq([]byte{1, 2}, []byte{1, 2, 3}).Reveal())
}

func TestArrayCmp(t *testing.T) {
	cases := [][2]string{
		{"abc", "abc"},
		{"abc", "abd"},
		{"abd", "abc"},
		{"", ""},
		{"a", "b"},
	}
	for _, c := range cases {
		a, b := []byte(c[0]), []byte(c[1])
		want := bytes.Compare(a, b)
		got := ArrayCmp(a, b)
		require.Equal(t, want, got, "ArrayCmp(%q,%q)", c[0], c[1])
		require.Equal(t, -got, ArrayCmp(b, a), "antisymmetry")
		require.Equal(t, got == 0, ArrayEq(a, b).Reveal(), "zero iff eq")
	}
}
