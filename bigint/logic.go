package bigint

// logicOp applies f limb-wise across a and b into z; NaN on shape
// mismatch or NaN operand.
func logicOp(z, a, b *Int, f func(x, y uint32) uint32) *Int {
	if !requireShapes(z, a, b) || a.nan || b.nan {
		return z.setNaN()
	}
	for i := range z.limbs {
		z.limbs[i] = f(a.limbs[i], b.limbs[i])
	}
	z.nan = false
	z.canon()
	return z
}

// And sets z = a AND b (bitwise, two's complement).
func And(z, a, b *Int) *Int { return logicOp(z, a, b, func(x, y uint32) uint32 { return x & y }) }

// Or sets z = a OR b.
func Or(z, a, b *Int) *Int { return logicOp(z, a, b, func(x, y uint32) uint32 { return x | y }) }

// Xor sets z = a XOR b.
func Xor(z, a, b *Int) *Int { return logicOp(z, a, b, func(x, y uint32) uint32 { return x ^ y }) }

// Eqv sets z = NOT (a XOR b) (bitwise equivalence, XNOR).
func Eqv(z, a, b *Int) *Int {
	return logicOp(z, a, b, func(x, y uint32) uint32 { return ^(x ^ y) })
}

// Not sets z = bitwise complement of x; NaN on shape mismatch or NaN
// operand.
func Not(z, x *Int) *Int {
	if !sameShape(z, x) || x.nan {
		return z.setNaN()
	}
	for i := range z.limbs {
		z.limbs[i] = ^x.limbs[i]
	}
	z.nan = false
	z.canon()
	return z
}
