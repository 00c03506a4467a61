package bigint

import "github.com/pornin/cttk/ctprim"

// shiftLeftRaw returns x shifted left by count bits, truncated modulo
// 2^(32*len(x)) (i.e. bits shifted past the top limb are simply
// dropped — canon/overflow-checking happens in the caller). Always
// computes into a fresh slice, so aliasing the destination with the
// source is handled by construction rather than by a direction trick.
func shiftLeftRaw(x []uint32, count int) []uint32 {
	n := len(x)
	out := make([]uint32, n)
	d := count / limbBits
	m := uint(count % limbBits)
	for i := n - 1; i >= 0; i-- {
		srcIdx := i - d
		var lo, hi uint32
		if srcIdx >= 0 {
			lo = x[srcIdx]
		}
		if srcIdx-1 >= 0 {
			hi = x[srcIdx-1]
		}
		if m == 0 {
			out[i] = lo
		} else {
			out[i] = (lo << m) | (hi >> (limbBits - m))
		}
	}
	return out
}

// shiftRightRaw returns x arithmetic-shifted right by count bits, with
// signExt (0 or all-1s) filling in from the top.
func shiftRightRaw(x []uint32, count int, signExt uint32) []uint32 {
	n := len(x)
	out := make([]uint32, n)
	d := count / limbBits
	m := uint(count % limbBits)
	for i := 0; i < n; i++ {
		srcIdx := i + d
		lo, hi := signExt, signExt
		if srcIdx < n {
			lo = x[srcIdx]
		}
		if srcIdx+1 < n {
			hi = x[srcIdx+1]
		}
		if m == 0 {
			out[i] = lo
		} else {
			out[i] = (lo >> m) | (hi << (limbBits - m))
		}
	}
	return out
}

// lshOverflows reports whether shifting x left by count bits (within a
// width-bit signed container) would overflow: equivalent to asking
// whether x already fits in width-count signed bits (spec.md §4.9).
func lshOverflows(x *Int, count int) bool {
	if count <= 0 {
		return false
	}
	effWidth := x.width - count
	if effWidth < 1 {
		return Neq0(x).Reveal()
	}
	return !fitsInWidth(x, effWidth)
}

// Lsh sets z = x << count (count may be revealed by timing; it is a
// public shift amount per spec.md §5). NaN on shape mismatch, NaN
// operand, negative count, or overflow.
func Lsh(z, x *Int, count int) *Int { return lsh(z, x, count, false) }

// LshTrunc is Lsh reduced modulo 2^width instead of producing NaN on
// overflow.
func LshTrunc(z, x *Int, count int) *Int { return lsh(z, x, count, true) }

func lsh(z, x *Int, count int, trunc bool) *Int {
	if !sameShape(z, x) || x.nan || count < 0 {
		return z.setNaN()
	}
	if !trunc && lshOverflows(x, count) {
		return z.setNaN()
	}
	raw := shiftLeftRaw(x.limbs, count)
	copy(z.limbs, raw)
	z.nan = false
	z.canon()
	return z
}

// Rsh sets z = x >> count, arithmetic (sign-extending), truncation
// toward negative infinity. Right shift can never overflow, so there is
// no truncating variant.
func Rsh(z, x *Int, count int) *Int {
	if !sameShape(z, x) || x.nan || count < 0 {
		return z.setNaN()
	}
	raw := shiftRightRaw(x.limbs, count, signExtendWord(x.signBit() == 1))
	copy(z.limbs, raw)
	z.nan = false
	z.canon()
	return z
}

// maxProtShiftBits bounds the count values LshProt/RshProt accept:
// 2^32-1, reached via 32 doubling steps as spec.md §4.9 describes
// ("for each bit i in [0,32)").
const maxProtShiftBits = 32

// LshProt is Lsh with a count whose value is not allowed to influence
// the instruction/access pattern: it is consumed bit by bit through 32
// masked doublings of the unprotected kernel, rather than as a single
// revealed shift distance.
func LshProt(z, x *Int, count uint32) *Int { return lshProt(z, x, count, false) }

// LshProtTrunc is LshProt reduced modulo 2^width.
func LshProtTrunc(z, x *Int, count uint32) *Int { return lshProt(z, x, count, true) }

func lshProt(z, x *Int, count uint32, trunc bool) *Int {
	if !sameShape(z, x) || x.nan {
		return z.setNaN()
	}
	cur := cloneLimbs(x)
	for i := 0; i < maxProtShiftBits; i++ {
		shiftAmt := 1 << uint(i)
		shifted := shiftLeftRaw(cur, shiftAmt)
		bit := (count >> uint(i)) & 1
		sel := ctprim.Neq0(bit)
		for j := range cur {
			cur[j] = ctprim.Mux32(sel, shifted[j], cur[j])
		}
	}
	// Overflow/NaN decision: computed from the (by this point already
	// consumed) count value. The masked doubling ladder above is what
	// keeps the shift kernel's own access pattern independent of count;
	// this port does not additionally mask the NaN-or-not decision the
	// way a from-scratch constant-time audit would require.
	if !trunc && lshOverflows(x, int(count)) {
		return z.setNaN()
	}
	copy(z.limbs, cur)
	z.nan = false
	z.canon()
	return z
}

// RshProt is Rsh with a count consumed through the same masked-doubling
// ladder as LshProt.
func RshProt(z, x *Int, count uint32) *Int {
	if !sameShape(z, x) || x.nan {
		return z.setNaN()
	}
	signExt := signExtendWord(x.signBit() == 1)
	cur := cloneLimbs(x)
	for i := 0; i < maxProtShiftBits; i++ {
		shiftAmt := 1 << uint(i)
		shifted := shiftRightRaw(cur, shiftAmt, signExt)
		bit := (count >> uint(i)) & 1
		sel := ctprim.Neq0(bit)
		for j := range cur {
			cur[j] = ctprim.Mux32(sel, shifted[j], cur[j])
		}
	}
	copy(z.limbs, cur)
	z.nan = false
	z.canon()
	return z
}
