package bigint

import "github.com/pornin/cttk/ctprim"

// mulLimbsMod computes a*b (both treated as unsigned little-endian limb
// arrays) truncated to outLen limbs — schoolbook multiply-accumulate with
// 64-bit carry propagation, grounded on the same widening-multiply
// primitive ctprim.MulU32Wide exposes for exactly this purpose.
//
// Every limb product whose column i+j falls below outLen is computed
// (products landing at or above outLen are skipped, a choice made on the
// public indices alone), and every carry-flush slot is visited
// unconditionally: spec.md §5 forbids branching on limb contents, so
// neither the "skip a zero limb" shortcut nor a carry-driven
// "while carry != 0" loop is allowed here, even though both are correct
// and common in a non-constant-time multiply. The carry out of a row's
// last column is folded into a fixed-length flush pass over columns
// i+len(b) through outLen-1 instead.
func mulLimbsMod(a, b []uint32, outLen int) []uint32 {
	out := make([]uint32, outLen)
	for i := 0; i < len(a); i++ {
		var carry uint64
		for j := 0; j < len(b); j++ {
			k := i + j
			if k >= outLen {
				continue
			}
			wide := ctprim.MulU32Wide(a[i], b[j])
			sum := uint64(out[k]) + wide + carry
			out[k] = uint32(sum)
			carry = sum >> 32
		}
		for k := i + len(b); k < outLen; k++ {
			sum := uint64(out[k]) + carry
			out[k] = uint32(sum)
			carry = sum >> 32
		}
	}
	return out
}

// mul implements Mul/MulTrunc. It sign-extends both operands to twice
// their limb count (limbAt already replicates the true sign bit past
// x.width), multiplies as plain unsigned arrays, and lands on the exact
// two's-complement product: a width-bit signed product always fits in
// 2*width bits, so no information is lost by computing at double width.
// Overflow is then just fitsInWidth on that double-width product,
// reusing the same no-loss-on-truncation check every other narrowing
// path in this package uses.
func mul(z, a, b *Int, trunc bool) *Int {
	if !requireShapes(z, a, b) || a.nan || b.nan {
		return z.setNaN()
	}
	n := len(a.limbs)
	aExt := make([]uint32, 2*n)
	bExt := make([]uint32, 2*n)
	for i := 0; i < 2*n; i++ {
		aExt[i] = limbAt(a, i)
		bExt[i] = limbAt(b, i)
	}
	full := mulLimbsMod(aExt, bExt, 2*n)
	if !trunc {
		wide := &Int{width: 2 * n * limbBits, nan: false, limbs: full}
		if !fitsInWidth(wide, a.width) {
			return z.setNaN()
		}
	}
	copy(z.limbs, full[:n])
	z.nan = false
	z.canon()
	return z
}

// Mul sets z = a * b; NaN on shape mismatch, NaN operand, or overflow
// (the mathematical product does not fit in a.width signed bits).
func Mul(z, a, b *Int) *Int { return mul(z, a, b, false) }

// MulTrunc sets z = (a * b) mod 2^width.
func MulTrunc(z, a, b *Int) *Int { return mul(z, a, b, true) }
