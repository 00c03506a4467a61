package bigint

// limbAt returns logical limb i of x's two's-complement value, treating
// the value as extending infinitely in both the zero and sign-extension
// directions. i may range beyond len(x.limbs)-1; the result then is the
// constant sign-extension word (0 or all-1s).
func limbAt(x *Int, i int) uint32 {
	if i < len(x.limbs) {
		return x.limbs[i]
	}
	return signExtendWord(x.signBit() == 1)
}

// signExtendWord returns the constant virtual limb beyond x's stored
// limbs: all-1s if x is negative, all-0s otherwise.
func signExtendWord(negative bool) uint32 {
	if negative {
		return ^uint32(0)
	}
	return 0
}

// fitsInWidth reports whether the infinite-precision value represented
// by src (itself width srcWidth bits, canonical) fits in dstWidth bits
// without loss, i.e. every virtual limb beyond dstWidth's range equals
// the sign extension implied by bit (dstWidth-1).
func fitsInWidth(src *Int, dstWidth int) bool {
	if dstWidth >= src.width {
		return true
	}
	// Determine what the sign bit at dstWidth-1 would be, then require
	// every higher bit of src (up to and including its own sign bit) to
	// match it — the standard no-loss-on-truncation check.
	wantNeg := bitAt(src, dstWidth-1) != 0
	for b := dstWidth - 1; b < src.width+1; b++ {
		if bitAt(src, b) != boolBit(wantNeg) {
			return false
		}
	}
	return true
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// bitAt returns bit index b (0 = LSB) of x's two's-complement value,
// including virtual bits beyond x.width (sign-extended).
func bitAt(x *Int, b int) uint32 {
	limb := b / limbBits
	pos := uint(b % limbBits)
	return (limbAt(x, limb) >> pos) & 1
}

// assignFromVirtual fills z's limb array from an arbitrary-precision
// virtual source (a function returning logical limb i of some value) and
// re-canonicalizes, truncating or sign-extending into z.width as a side
// effect of simply reading exactly len(z.limbs) limbs from src.
func (z *Int) assignFromVirtual(src func(i int) uint32) {
	for i := range z.limbs {
		z.limbs[i] = src(i)
	}
	z.nan = false
	z.canon()
}
