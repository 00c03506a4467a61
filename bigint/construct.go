package bigint

// Set copies src into z: same shape required, else z becomes NaN (spec.md
// §4.6 "copy(d,s) requires identical shapes"). Aliasing (z == src) is a
// no-op.
func Set(z, src *Int) *Int {
	if !sameShape(z, src) || src.nan {
		return z.setNaN()
	}
	if z != src {
		copy(z.limbs, src.limbs)
	}
	z.nan = false
	return z
}

// virtualFromInt64 returns a virtual-limb accessor over a native int64.
func virtualFromInt64(v int64) func(int) uint32 {
	uv := uint64(v)
	neg := v < 0
	return func(i int) uint32 {
		switch i {
		case 0:
			return uint32(uv)
		case 1:
			return uint32(uv >> 32)
		default:
			return signExtendWord(neg)
		}
	}
}

// virtualFromUint64 returns a virtual-limb accessor over a native
// uint64, zero-extended without bound.
func virtualFromUint64(v uint64) func(int) uint32 {
	return func(i int) uint32 {
		switch i {
		case 0:
			return uint32(v)
		case 1:
			return uint32(v >> 32)
		default:
			return 0
		}
	}
}

// fitsSigned64 reports whether v fits in a signed integer of the given
// width.
func fitsSigned64(v int64, width int) bool {
	if width >= 64 {
		return true
	}
	min := -(int64(1) << uint(width-1))
	max := (int64(1) << uint(width-1)) - 1
	return v >= min && v <= max
}

// fitsUnsigned64 reports whether the nonnegative value v fits as a
// positive value in a signed integer of the given width (spec.md §4.4:
// "NaN if the source does not fit the representable range").
func fitsUnsigned64(v uint64, width int) bool {
	if width >= 65 {
		return true
	}
	if width == 64 {
		return v <= (uint64(1)<<63)-1
	}
	max := (uint64(1) << uint(width-1)) - 1
	return v <= max
}

// SetS64 sets z to x if x fits z's width, NaN otherwise.
func SetS64(z *Int, x int64) *Int {
	if !fitsSigned64(x, z.width) {
		return z.setNaN()
	}
	z.assignFromVirtual(virtualFromInt64(x))
	return z
}

// SetS64Trunc sets z to x reduced modulo 2^width; never NaN from range.
func SetS64Trunc(z *Int, x int64) *Int {
	z.assignFromVirtual(virtualFromInt64(x))
	return z
}

// SetU64 sets z to x if x fits (as a nonnegative value) in z's width,
// NaN otherwise.
func SetU64(z *Int, x uint64) *Int {
	if !fitsUnsigned64(x, z.width) {
		return z.setNaN()
	}
	z.assignFromVirtual(virtualFromUint64(x))
	return z
}

// SetU64Trunc sets z to x reduced modulo 2^width.
func SetU64Trunc(z *Int, x uint64) *Int {
	z.assignFromVirtual(virtualFromUint64(x))
	return z
}

// SetS32 sets z to x if x fits z's width, NaN otherwise.
func SetS32(z *Int, x int32) *Int { return SetS64(z, int64(x)) }

// SetS32Trunc sets z to x reduced modulo 2^width.
func SetS32Trunc(z *Int, x int32) *Int { return SetS64Trunc(z, int64(x)) }

// SetU32 sets z to x if x fits (as nonnegative) in z's width, NaN
// otherwise.
func SetU32(z *Int, x uint32) *Int { return SetU64(z, uint64(x)) }

// SetU32Trunc sets z to x reduced modulo 2^width.
func SetU32Trunc(z *Int, x uint32) *Int { return SetU64Trunc(z, uint64(x)) }

// ToS64 returns x's value if it is non-NaN and fits an int64, 0
// otherwise.
func ToS64(x *Int) int64 {
	if x.nan || !fitsInWidth(x, 64) {
		return 0
	}
	return int64(uint64(limbAt(x, 0)) | uint64(limbAt(x, 1))<<32)
}

// ToS64Trunc returns x's value reduced modulo 2^64 (0 if NaN).
func ToS64Trunc(x *Int) int64 {
	if x.nan {
		return 0
	}
	return int64(uint64(limbAt(x, 0)) | uint64(limbAt(x, 1))<<32)
}

// ToS32 returns x's value if it is non-NaN and fits an int32, 0
// otherwise.
func ToS32(x *Int) int32 {
	if x.nan || !fitsInWidth(x, 32) {
		return 0
	}
	return int32(limbAt(x, 0))
}

// ToS32Trunc returns x's value reduced modulo 2^32 (0 if NaN).
func ToS32Trunc(x *Int) int32 {
	if x.nan {
		return 0
	}
	return int32(limbAt(x, 0))
}

// ToU64 returns x's value if it is non-NaN, nonnegative, and fits a
// uint64, 0 otherwise.
func ToU64(x *Int) uint64 {
	if x.nan || x.signBit() == 1 || !fitsInWidth(x, 65) {
		return 0
	}
	return uint64(limbAt(x, 0)) | uint64(limbAt(x, 1))<<32
}

// ToU64Trunc returns x's value reduced modulo 2^64 (0 if NaN).
func ToU64Trunc(x *Int) uint64 {
	if x.nan {
		return 0
	}
	return uint64(limbAt(x, 0)) | uint64(limbAt(x, 1))<<32
}

// ToU32 returns x's value if it is non-NaN, nonnegative, and fits a
// uint32, 0 otherwise.
func ToU32(x *Int) uint32 {
	if x.nan || x.signBit() == 1 || !fitsInWidth(x, 33) {
		return 0
	}
	return limbAt(x, 0)
}

// ToU32Trunc returns x's value reduced modulo 2^32 (0 if NaN).
func ToU32Trunc(x *Int) uint32 {
	if x.nan {
		return 0
	}
	return limbAt(x, 0)
}
