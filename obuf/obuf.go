// Package obuf implements oblivious byte-buffer operations: conditional
// copy and swap, O(N) array read/write at a secret index, and
// equality/lexicographic compare, all with access patterns that do not
// depend on the selector or index values (spec.md §4.2).
//
// The free-function style mirrors crypto/subtle: there is no persistent
// OBUF value, only operations over caller-owned []byte buffers.
package obuf

import (
	"unsafe"

	"github.com/pornin/cttk/ctbool"
	"github.com/pornin/cttk/ctprim"
)

// uintptrOf converts a byte pointer to its numeric address, used only to
// decide copy direction for overlapping buffers (a layout fact, not a
// content fact, so comparing addresses leaks nothing secret).
func uintptrOf(p *byte) uintptr {
	return uintptr(unsafe.Pointer(p))
}

// CondCopy sets dst to a byte-wise snapshot of src (memmove semantics on
// overlap) when sel is true; when sel is false dst is left unchanged.
// Every destination byte is read and rewritten on both paths, so the
// access pattern does not reveal sel. dst and src must have equal length;
// a length mismatch panics (a programming error, not a secret condition).
func CondCopy(sel ctbool.Bool, dst, src []byte) {
	if len(dst) != len(src) {
		panic("obuf: CondCopy length mismatch")
	}
	mask := byte(sel.Mask())
	n := len(dst)
	// Address comparison (not content comparison) decides direction, so
	// this leaks nothing about buffer contents, only their layout, which
	// overlapping-slice callers already know.
	if overlapsForward(dst, src) {
		for i := n - 1; i >= 0; i-- {
			dst[i] ^= (src[i] ^ dst[i]) & mask
		}
	} else {
		for i := 0; i < n; i++ {
			dst[i] ^= (src[i] ^ dst[i]) & mask
		}
	}
}

// overlapsForward reports whether dst starts after src in memory, which
// for overlapping slices means the copy must proceed high-to-low to
// reproduce memmove semantics. It compares start addresses only, so
// disjoint buffers may report either result, which is safe since then
// no source byte is overwritten before it is read.
func overlapsForward(dst, src []byte) bool {
	if len(dst) == 0 || len(src) == 0 {
		return false
	}
	dp := &dst[0]
	sp := &src[0]
	return uintptrOf(dp) > uintptrOf(sp)
}

// CondSwap exchanges the contents of a and b when sel is true, and
// leaves both unchanged when sel is false; every byte of both buffers is
// touched on both paths. a and b must be disjoint (the spec requires
// this; overlapping buffers are not supported by CondSwap, unlike
// CondCopy).
func CondSwap(sel ctbool.Bool, a, b []byte) {
	if len(a) != len(b) {
		panic("obuf: CondSwap length mismatch")
	}
	mask := byte(sel.Mask())
	for i := range a {
		x := (a[i] ^ b[i]) & mask
		a[i] ^= x
		b[i] ^= x
	}
}

// ArrayRead copies element idx of a (an array of num elements of size
// elt bytes each) into dst, visiting every element of a exactly once
// regardless of idx, so the access pattern does not reveal which element
// was selected.
func ArrayRead(dst []byte, a []byte, elt, num int, idx uint32) {
	if len(dst) != elt || len(a) != elt*num {
		panic("obuf: ArrayRead size mismatch")
	}
	for i := 0; i < num; i++ {
		sel := ctbool.FromMask(eqIndexMask(uint32(i), idx))
		CondCopy(sel, dst, a[i*elt:(i+1)*elt])
	}
}

// ArrayWrite writes src into element idx of a, visiting every element of
// a exactly once regardless of idx.
func ArrayWrite(a []byte, elt, num int, idx uint32, src []byte) {
	if len(src) != elt || len(a) != elt*num {
		panic("obuf: ArrayWrite size mismatch")
	}
	for i := 0; i < num; i++ {
		sel := ctbool.FromMask(eqIndexMask(uint32(i), idx))
		CondCopy(sel, a[i*elt:(i+1)*elt], src)
	}
}

// eqIndexMask returns an all-1s mask iff i == idx, computed without a
// data-dependent branch.
func eqIndexMask(i, idx uint32) uint32 {
	return ctprim.Eq(i, idx).Mask()
}

// ArrayEq reports whether a and b (equal length) are byte-wise equal,
// examining every byte regardless of where the first difference (if any)
// falls.
func ArrayEq(a, b []byte) ctbool.Bool {
	if len(a) != len(b) {
		return ctbool.False
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return ctprim.Eq0(uint32(v))
}

// ArrayCmp lexicographically compares a and b (equal length, unsigned
// byte values) and returns -1, 0, or 1, examining every byte and merging
// results branch-free so the result position does not leak.
//
// A running tri-state token r starts at 0; for each byte pair we compute
// a per-byte tri-state z and, if r is still undecided (0), replace it
// with z — the merge uses the fact that a nonzero r's low bit pattern
// can mask out further updates.
func ArrayCmp(a, b []byte) int {
	if len(a) != len(b) {
		panic("obuf: ArrayCmp length mismatch")
	}
	r := int32(0)
	for i := range a {
		z := triState(a[i], b[i])
		decided := neqZeroMaskI32(r)
		r = (r & decided) | (z &^ decided)
	}
	return int(r)
}

// triState returns -1, 0, or 1 comparing x and y as unsigned bytes,
// without branching on the comparison outcome.
func triState(x, y byte) int32 {
	lt := -1 & int32(ltByteMask(x, y))
	gt := 1 & int32(ltByteMask(y, x))
	return lt | gt
}

// ltByteMask returns an all-1s mask iff x < y, treating both as unsigned
// bytes; delegates to ctprim.Lt's 32-bit unsigned compare, which holds
// for any magnitude, byte-range included.
func ltByteMask(x, y byte) uint32 {
	return ctprim.Lt(uint32(x), uint32(y)).Mask()
}

// neqZeroMaskI32 returns an all-1s mask iff r != 0.
func neqZeroMaskI32(r int32) int32 {
	return int32(ctprim.Neq0(uint32(r)).Mask())
}
