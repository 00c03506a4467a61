package bigint

import (
	"github.com/pornin/cttk/ctbool"
	"github.com/pornin/cttk/ctprim"
)

// cmpCore computes lt and eq as controlled booleans for non-NaN,
// same-shape a, b, visiting every limb regardless of where a and b first
// differ. It reuses the same ripple subtraction addsub.go uses for Sub.
func cmpCore(a, b *Int) (lt, eq ctbool.Bool) {
	d, _ := rawSub(a.limbs, b.limbs)
	var acc uint32
	for _, w := range d {
		acc |= w
	}
	eq = ctprim.Eq0(acc)

	pos := signBitPos(a.width)
	top := len(d) - 1
	signDiff := (d[top] >> pos) & 1
	signA := a.signBit()
	signB := b.signBit()
	overflow := (signA ^ signB) & (signDiff ^ signA)
	lt = ctbool.FromMask(-(signDiff ^ overflow))
	return lt, eq
}

// comparable reports (as a plain bool) whether a and b are both
// non-NaN and share shape — the precondition every binary comparison
// needs before cmpCore may run.
func comparable(a, b *Int) bool {
	return !a.nan && !b.nan && sameShape(a, b)
}

// Cmp returns -1, 0, or 1 comparing a and b; 0 on NaN or shape mismatch
// (spec.md §4.6).
func Cmp(a, b *Int) int {
	if !comparable(a, b) {
		return 0
	}
	lt, eq := cmpCore(a, b)
	if eq.Reveal() {
		return 0
	}
	if lt.Reveal() {
		return -1
	}
	return 1
}

// Sign returns -1, 0, or 1: x's sign, or 0 on NaN.
func Sign(x *Int) int {
	if x.nan {
		return 0
	}
	var acc uint32
	for _, w := range x.limbs {
		acc |= w
	}
	if ctprim.Eq0(acc).Reveal() {
		return 0
	}
	if x.signBit() == 1 {
		return -1
	}
	return 1
}

// Eq reports a == b; false on NaN or shape mismatch (never true for a
// NaN operand, mirroring IEEE 754: not even NaN == NaN).
func Eq(a, b *Int) ctbool.Bool {
	if !comparable(a, b) {
		return ctbool.False
	}
	_, eq := cmpCore(a, b)
	return eq
}

// Neq reports a != b.
func Neq(a, b *Int) ctbool.Bool {
	if !comparable(a, b) {
		return ctbool.False
	}
	_, eq := cmpCore(a, b)
	return eq.Not()
}

// Lt reports a < b.
func Lt(a, b *Int) ctbool.Bool {
	if !comparable(a, b) {
		return ctbool.False
	}
	lt, _ := cmpCore(a, b)
	return lt
}

// Gt reports a > b.
func Gt(a, b *Int) ctbool.Bool {
	if !comparable(a, b) {
		return ctbool.False
	}
	lt, eq := cmpCore(a, b)
	return lt.Or(eq).Not()
}

// Leq reports a <= b.
func Leq(a, b *Int) ctbool.Bool {
	if !comparable(a, b) {
		return ctbool.False
	}
	lt, eq := cmpCore(a, b)
	return lt.Or(eq)
}

// Geq reports a >= b.
func Geq(a, b *Int) ctbool.Bool {
	if !comparable(a, b) {
		return ctbool.False
	}
	lt, _ := cmpCore(a, b)
	return lt.Not()
}

// zeroFlag returns a controlled boolean reporting whether x (known
// non-NaN) equals zero.
func zeroFlag(x *Int) ctbool.Bool {
	var acc uint32
	for _, w := range x.limbs {
		acc |= w
	}
	return ctprim.Eq0(acc)
}

// Eq0 reports x == 0; false on NaN.
func Eq0(x *Int) ctbool.Bool {
	if x.nan {
		return ctbool.False
	}
	return zeroFlag(x)
}

// Neq0 reports x != 0; false on NaN.
func Neq0(x *Int) ctbool.Bool {
	if x.nan {
		return ctbool.False
	}
	return zeroFlag(x).Not()
}

// Lt0 reports x < 0; false on NaN.
func Lt0(x *Int) ctbool.Bool {
	if x.nan {
		return ctbool.False
	}
	return ctbool.FromMask(-x.signBit())
}

// Leq0 reports x <= 0; false on NaN.
func Leq0(x *Int) ctbool.Bool {
	if x.nan {
		return ctbool.False
	}
	return Lt0(x).Or(Eq0(x))
}

// Gt0 reports x > 0; false on NaN.
func Gt0(x *Int) ctbool.Bool {
	if x.nan {
		return ctbool.False
	}
	return Leq0(x).Not()
}

// Geq0 reports x >= 0; false on NaN.
func Geq0(x *Int) ctbool.Bool {
	if x.nan {
		return ctbool.False
	}
	return Lt0(x).Not()
}

// Copy sets z to x; requires identical shape (else z becomes NaN).
// Aliasing (z == x) is a no-op.
func Copy(z, x *Int) *Int { return Set(z, x) }

// condMuxLimbs writes into z's limb array, per-limb-selecting between a
// and b's limbs under sel, touching every limb on both paths.
func condMuxLimbs(sel ctbool.Bool, z, a, b *Int) {
	for i := range z.limbs {
		z.limbs[i] = ctprim.Mux32(sel, a.limbs[i], b.limbs[i])
	}
}

// CondCopy sets z to x when sel is true, leaves z unchanged when sel is
// false; every limb of z is touched on both paths. Requires identical
// shape (else z becomes NaN, regardless of sel — a shape mismatch is a
// programming error, not a secret condition).
func CondCopy(sel ctbool.Bool, z, x *Int) *Int {
	if !sameShape(z, x) {
		return z.setNaN()
	}
	condMuxLimbs(sel, z, x, z)
	z.nan = ctprim.Mux32(sel, boolMask01(x.nan), boolMask01(z.nan)) != 0
	return z
}

func boolMask01(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Swap exchanges the contents (value and NaN-ness) of a and b; requires
// identical shape (else both become NaN).
func Swap(a, b *Int) {
	if !sameShape(a, b) {
		a.setNaN()
		b.setNaN()
		return
	}
	a.limbs, b.limbs = b.limbs, a.limbs
	a.nan, b.nan = b.nan, a.nan
}

// CondSwap exchanges a and b when sel is true, leaves them unchanged
// otherwise; every limb of both buffers is touched on both paths.
// Requires identical shape.
func CondSwap(sel ctbool.Bool, a, b *Int) {
	if !sameShape(a, b) {
		a.setNaN()
		b.setNaN()
		return
	}
	mask := sel.Mask()
	for i := range a.limbs {
		x := (a.limbs[i] ^ b.limbs[i]) & mask
		a.limbs[i] ^= x
		b.limbs[i] ^= x
	}
	toggle := (boolMask01(a.nan) ^ boolMask01(b.nan)) & (mask & 1)
	a.nan = a.nan != (toggle != 0)
	b.nan = b.nan != (toggle != 0)
}

// Mux sets z to a if sel is true, to b if sel is false; requires a, b,
// and z to all share shape.
func Mux(sel ctbool.Bool, z, a, b *Int) *Int {
	if !sameShape(a, b) || !sameShape(z, a) {
		return z.setNaN()
	}
	condMuxLimbs(sel, z, a, b)
	z.nan = ctprim.Mux32(sel, boolMask01(a.nan), boolMask01(b.nan)) != 0
	return z
}
