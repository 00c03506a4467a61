package bigint

import (
	"github.com/pornin/cttk/ctbool"
	"github.com/pornin/cttk/ctprim"
)

// absMagnitude returns x's magnitude as an unsigned limb array of the
// same length as x.limbs, plus x's sign bit. Works even when x is the
// most-negative representable value, since that magnitude (2^(width-1))
// always fits in width unsigned bits.
func absMagnitude(x *Int) ([]uint32, uint32) {
	sign := x.signBit()
	zero := make([]uint32, len(x.limbs))
	neg, _ := rawSub(zero, x.limbs)
	sel := ctbool.FromMask(-sign)
	mag := make([]uint32, len(x.limbs))
	for i := range mag {
		mag[i] = ctprim.Mux32(sel, neg[i], x.limbs[i])
	}
	return mag, sign
}

// applySign returns mag negated (two's complement, same limb count) when
// neg is 1, or mag unchanged when neg is 0.
func applySign(mag []uint32, neg uint32) []uint32 {
	zero := make([]uint32, len(mag))
	negated, _ := rawSub(zero, mag)
	sel := ctbool.FromMask(-neg)
	out := make([]uint32, len(mag))
	for i := range out {
		out[i] = ctprim.Mux32(sel, negated[i], mag[i])
	}
	return out
}

// restoringDivMod computes unsigned a/b and a%b, bit by bit from the
// most significant bit down (spec.md §4.10): at each step the trial
// subtraction rem-b is always performed, and a controlled boolean
// selects whether it sticks, rather than branching on the comparison.
// a and b must have the same limb count; b must be nonzero.
func restoringDivMod(a, b []uint32) (q, rem []uint32) {
	n := len(a)
	q = make([]uint32, n)
	rem = make([]uint32, n)
	total := n * limbBits
	for i := total - 1; i >= 0; i-- {
		rem = shiftLeftRaw(rem, 1)
		bit := (a[i/limbBits] >> uint(i%limbBits)) & 1
		rem[0] |= bit
		trial, borrow := rawSub(rem, b)
		noBorrow := ctprim.Eq0(borrow)
		for j := range rem {
			rem[j] = ctprim.Mux32(noBorrow, trial[j], rem[j])
		}
		q[i/limbBits] |= (noBorrow.Mask() & 1) << uint(i%limbBits)
	}
	return q, rem
}

// DivRem sets q = a/b and r = a%b, truncating the quotient toward zero
// (so r takes the dividend's sign, matching Go's native / and %). Both
// go NaN on shape mismatch, a NaN operand, or b == 0. The only quotient
// overflow case is a == MinValue and b == -1: there the true remainder
// (0) is representable and still written to r, per spec.md §4.10 and
// scenario S3 ("a = -128, b = -1: divrem -> q = NaN, r = 0") — only the
// quotient, which is not representable, becomes NaN.
func DivRem(q, r, a, b *Int) {
	if !requireShapes(q, a, b) || !requireShapes(r, a, b) || a.nan || b.nan || Eq0(b).Reveal() {
		q.setNaN()
		r.setNaN()
		return
	}
	n := len(a.limbs)
	magA, signA := absMagnitude(a)
	magB, signB := absMagnitude(b)
	qMag, rMag := restoringDivMod(magA, magB)
	qSigned := applySign(qMag, signA^signB)
	rSigned := applySign(rMag, signA)

	copy(r.limbs, rSigned)
	r.nan = false
	r.canon()

	wideQ := &Int{width: n * limbBits, nan: false, limbs: qSigned}
	if !fitsInWidth(wideQ, a.width) {
		q.setNaN()
		return
	}
	copy(q.limbs, qSigned)
	q.nan = false
	q.canon()
}

// Mod sets z to the Euclidean remainder of a divided by b: always in
// [0, |b|), regardless of either operand's sign. NaN on shape mismatch,
// a NaN operand, or b == 0. A Euclidean remainder's magnitude is always
// strictly less than |b|, which is at most 2^(width-1), so the result
// fits in width-1 bits and, unlike DivRem, this operation can never
// overflow.
func Mod(z, a, b *Int) *Int {
	if !sameShape(z, a) || !sameShape(a, b) || a.nan || b.nan || Eq0(b).Reveal() {
		return z.setNaN()
	}
	magA, signA := absMagnitude(a)
	magB, _ := absMagnitude(b)
	_, rMag := restoringDivMod(magA, magB)

	diff, _ := rawSub(magB, rMag)
	var acc uint32
	for _, w := range rMag {
		acc |= w
	}
	nonZero := ctprim.Neq0(acc)
	negRem := ctbool.FromMask(-signA)
	corrSel := negRem.And(nonZero)

	out := make([]uint32, len(rMag))
	for i := range out {
		out[i] = ctprim.Mux32(corrSel, diff[i], rMag[i])
	}
	copy(z.limbs, out)
	z.nan = false
	z.canon()
	return z
}
