package bigint

// byteBit returns bit i (0 = LSB of the whole byte string) of b, treating
// b as big-endian or little-endian per bigEndian.
func byteBit(b []byte, bigEndian bool, i int) uint32 {
	byteIdx := i / 8
	bitIdx := uint(i % 8)
	var idx int
	if bigEndian {
		idx = len(b) - 1 - byteIdx
	} else {
		idx = byteIdx
	}
	return uint32((b[idx] >> bitIdx) & 1)
}

// virtualFromBytes returns a 32-bit-limb accessor over a byte string
// interpreted as a two's-complement (signed) or zero-extended
// (unsigned) integer, sign/zero-extended without bound beyond the
// string's own bit length.
func virtualFromBytes(b []byte, bigEndian, signed bool) func(int) uint32 {
	totalBits := len(b) * 8
	neg := false
	if signed && totalBits > 0 {
		neg = byteBit(b, bigEndian, totalBits-1) == 1
	}
	ext := signExtendWord(neg)
	return func(limbIdx int) uint32 {
		base := limbIdx * 32
		if base >= totalBits {
			return ext
		}
		var w uint32
		limit := totalBits - base
		if limit > 32 {
			limit = 32
		}
		for k := 0; k < limit; k++ {
			w |= byteBit(b, bigEndian, base+k) << uint(k)
		}
		if limit < 32 {
			// Remaining high bits of this limb are sign/zero extension.
			w |= ext &^ ((uint32(1) << uint(limit)) - 1)
		}
		return w
	}
}

// bitOfVirtual reads bit b (0 = LSB) out of a raw limb accessor.
func bitOfVirtual(src func(int) uint32, b int) uint32 {
	limb := b / limbBits
	pos := uint(b % limbBits)
	return (src(limb) >> pos) & 1
}

// fitsVirtual reports whether a virtual value whose bits at and above
// natWidth are all known to be sign/zero extension fits losslessly in
// dstWidth signed bits. natWidth is an upper bound on the width the value
// needs, not necessarily the narrowest one.
func fitsVirtual(src func(int) uint32, natWidth, dstWidth int) bool {
	if dstWidth >= natWidth {
		return true
	}
	wantNeg := bitOfVirtual(src, dstWidth-1) != 0
	for b := dstWidth - 1; b <= natWidth; b++ {
		if (bitOfVirtual(src, b) != 0) != wantNeg {
			return false
		}
	}
	return true
}

// decodeSigned implements DecodeBESigned/DecodeLESigned, shared by the
// trunc and non-trunc forms.
func decodeSigned(z *Int, b []byte, bigEndian, trunc bool) *Int {
	if len(b) == 0 {
		return z.setNaN() // spec.md §4.5: empty signed decode -> NaN
	}
	src := virtualFromBytes(b, bigEndian, true)
	natWidth := len(b) * 8
	if !trunc && !fitsVirtual(src, natWidth, z.width) {
		return z.setNaN()
	}
	z.assignFromVirtual(src)
	return z
}

// decodeUnsigned implements DecodeBEUnsigned/DecodeLEUnsigned.
func decodeUnsigned(z *Int, b []byte, bigEndian, trunc bool) *Int {
	if len(b) == 0 {
		return z.setZero() // spec.md §4.5: empty unsigned decode -> 0
	}
	src := virtualFromBytes(b, bigEndian, false)
	natWidth := len(b)*8 + 1 // +1: an unsigned value needs an extra bit to stay positive when signed
	if !trunc && !fitsVirtual(src, natWidth, z.width) {
		return z.setNaN()
	}
	z.assignFromVirtual(src)
	return z
}

// DecodeBESigned decodes a big-endian two's-complement byte string into
// a width-z.width BIGINT, NaN on overflow or empty input.
func DecodeBESigned(z *Int, b []byte) *Int { return decodeSigned(z, b, true, false) }

// DecodeBESignedTrunc decodes, reducing modulo 2^width instead of
// producing NaN on overflow (still NaN on empty input).
func DecodeBESignedTrunc(z *Int, b []byte) *Int { return decodeSigned(z, b, true, true) }

// DecodeLESigned is DecodeBESigned for little-endian input.
func DecodeLESigned(z *Int, b []byte) *Int { return decodeSigned(z, b, false, false) }

// DecodeLESignedTrunc is DecodeBESignedTrunc for little-endian input.
func DecodeLESignedTrunc(z *Int, b []byte) *Int { return decodeSigned(z, b, false, true) }

// DecodeBEUnsigned decodes a big-endian nonnegative byte string, NaN if
// it would not fit positive in z's width.
func DecodeBEUnsigned(z *Int, b []byte) *Int { return decodeUnsigned(z, b, true, false) }

// DecodeBEUnsignedTrunc decodes, reducing modulo 2^width.
func DecodeBEUnsignedTrunc(z *Int, b []byte) *Int { return decodeUnsigned(z, b, true, true) }

// DecodeLEUnsigned is DecodeBEUnsigned for little-endian input.
func DecodeLEUnsigned(z *Int, b []byte) *Int { return decodeUnsigned(z, b, false, false) }

// DecodeLEUnsignedTrunc is DecodeBEUnsignedTrunc for little-endian input.
func DecodeLEUnsignedTrunc(z *Int, b []byte) *Int { return decodeUnsigned(z, b, false, true) }

// encode writes x's value into out, sign-extending or truncating to
// len(out) bytes; NaN sources emit all zeros. The encoded bytes depend
// only on the value (and the requested length), never on shape or NaN
// beyond that all-zero rule (spec.md §4.5).
func encode(x *Int, out []byte, bigEndian bool) {
	for i := range out {
		out[i] = 0
	}
	if x.nan {
		return
	}
	for bitPos := 0; bitPos < len(out)*8; bitPos++ {
		bit := bitAt(x, bitPos)
		byteIdx := bitPos / 8
		bitIdx := uint(bitPos % 8)
		var idx int
		if bigEndian {
			idx = len(out) - 1 - byteIdx
		} else {
			idx = byteIdx
		}
		out[idx] |= byte(bit) << bitIdx
	}
}

// EncodeBE writes x big-endian into out (any length); see encode.
func EncodeBE(x *Int, out []byte) { encode(x, out, true) }

// EncodeLE writes x little-endian into out (any length); see encode.
func EncodeLE(x *Int, out []byte) { encode(x, out, false) }
