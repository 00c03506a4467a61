// Package ctbool implements a controlled boolean: an opaque 0/1 value
// produced by constant-time comparisons, which cannot be fed into an
// ordinary Go "if" without passing through Reveal first. The type exists
// so that a reviewer can grep for Reveal and audit every place a secret
// comparison result starts influencing control flow.
package ctbool

// Bool is a controlled boolean. Its zero value is false. Values are only
// ever produced by ctprim, obuf, and bigint comparison helpers; the only
// public constructors are the True and False values, FromMask (for masks
// produced by branch-free code), and From, which is itself marked as
// stepping outside the constant-time discipline.
type Bool struct {
	v uint32 // 0 or 1, never anything else
}

// False is the zero Bool.
var False Bool

// True is the Bool reporting true.
var True = Bool{v: 1}

// From wraps an ordinary bool into a Bool. This is NOT constant-time: Go
// does not expose a branch-free way to turn a native bool into an
// integer, so From is only meant for tests and for boundary code that
// already knows a value is public (e.g. configuration flags).
func From(b bool) Bool {
	if b {
		return True
	}
	return False
}

// FromMask wraps a 0/0xFFFFFFFF mask (as produced by branch-free
// primitives) into a Bool. mask must be exactly 0 or ^uint32(0).
func FromMask(mask uint32) Bool {
	return Bool{v: mask & 1}
}

// Reveal converts b to an ordinary bool. This is the single explicit,
// non-constant-time escape hatch named in the package comment: calling it
// and then branching on the result reintroduces a secret-dependent jump,
// so callers must only do this once a value is known to be safe to
// branch on (e.g. reporting NaN-ness to a caller who will just log it).
func (b Bool) Reveal() bool {
	return b.v != 0
}

// Mask returns b as an all-0s or all-1s uint32, for use as an AND/XOR
// mask in branch-free arithmetic. This does not "reveal" anything — the
// mask is exactly as opaque as b itself until someone inspects its bits.
func (b Bool) Mask() uint32 {
	return -b.v
}

// And, Or, Xor, Not compose controlled booleans without ever converting
// to a native bool, so chains of comparisons stay inside the controlled
// domain.
func (b Bool) And(o Bool) Bool { return Bool{v: b.v & o.v} }
func (b Bool) Or(o Bool) Bool  { return Bool{v: b.v | o.v} }
func (b Bool) Xor(o Bool) Bool { return Bool{v: b.v ^ o.v} }
func (b Bool) Not() Bool       { return Bool{v: b.v ^ 1} }
