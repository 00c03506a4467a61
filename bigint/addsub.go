package bigint

import "math/bits"

// rawAdd ripple-adds two equal-length limb slices, returning the sum and
// the final carry out of the top limb.
func rawAdd(a, b []uint32) ([]uint32, uint32) {
	n := len(a)
	s := make([]uint32, n)
	var carry uint32
	for i := 0; i < n; i++ {
		s[i], carry = bits.Add32(a[i], b[i], carry)
	}
	return s, carry
}

// rawSub ripple-subtracts b from a, returning the difference and the
// final borrow out of the top limb.
func rawSub(a, b []uint32) ([]uint32, uint32) {
	n := len(a)
	d := make([]uint32, n)
	var borrow uint32
	for i := 0; i < n; i++ {
		d[i], borrow = bits.Sub32(a[i], b[i], borrow)
	}
	return d, borrow
}

// addSubOverflow reports whether a width-bit signed add/sub whose
// operands had sign bits signA, signB and whose raw result's sign bit is
// signR overflowed — the standard two's-complement rule: overflow iff
// the operand signs agree (for add) or disagree (for sub) in the way
// that makes the result's sign implausible. isSub selects which rule to
// apply.
func addSubOverflow(signA, signB, signR uint32, isSub bool) uint32 {
	if isSub {
		signB ^= 1 // a - b == a + (-b); compare against -b's sign
	}
	eqAB := (signA ^ signB) ^ 1 // 1 iff signA == signB
	neqRA := signR ^ signA      // 1 iff signR != signA
	return eqAB & neqRA & 1
}

func requireShapes(z, a, b *Int) bool {
	return sameShape(a, b) && sameShape(z, a)
}

// addOrSub is shared by Add/AddTrunc/Sub/SubTrunc.
func addOrSub(z, a, b *Int, isSub, trunc bool) *Int {
	if !requireShapes(z, a, b) || a.nan || b.nan {
		return z.setNaN()
	}
	var raw []uint32
	if isSub {
		raw, _ = rawSub(a.limbs, b.limbs)
	} else {
		raw, _ = rawAdd(a.limbs, b.limbs)
	}
	pos := signBitPos(a.width)
	top := len(raw) - 1
	signR := (raw[top] >> pos) & 1
	signA := a.signBit()
	signB := b.signBit()
	overflow := addSubOverflow(signA, signB, signR, isSub)
	if !trunc && overflow != 0 {
		return z.setNaN()
	}
	copy(z.limbs, raw)
	z.nan = false
	z.canon()
	return z
}

// Add sets z = a + b; NaN on shape mismatch, NaN operand, or overflow.
func Add(z, a, b *Int) *Int { return addOrSub(z, a, b, false, false) }

// AddTrunc sets z = (a + b) mod 2^width; NaN only on shape mismatch or
// NaN operand.
func AddTrunc(z, a, b *Int) *Int { return addOrSub(z, a, b, false, true) }

// Sub sets z = a - b; NaN on shape mismatch, NaN operand, or overflow.
func Sub(z, a, b *Int) *Int { return addOrSub(z, a, b, true, false) }

// SubTrunc sets z = (a - b) mod 2^width.
func SubTrunc(z, a, b *Int) *Int { return addOrSub(z, a, b, true, true) }

// Neg sets z = -x; NaN if x is NaN, shapes mismatch, or x is the
// most-negative representable value (which has no positive counterpart).
func Neg(z, x *Int) *Int {
	zero := New(x.width)
	zero.setZero()
	return addOrSub(z, zero, x, true, false)
}

// NegTrunc sets z = (-x) mod 2^width, so negating the most-negative
// value yields itself back instead of NaN.
func NegTrunc(z, x *Int) *Int {
	zero := New(x.width)
	zero.setZero()
	return addOrSub(z, zero, x, true, true)
}
