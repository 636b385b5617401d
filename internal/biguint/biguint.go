package biguint

import "math"

// Limb is one base-10^19 digit of a Value.
type Limb = uint64

// Digit is a single decimal digit in [0, 9]. It is only used to build a
// Value from a human-readable digit sequence.
type Digit uint8

// Value is an immutable arbitrary-precision unsigned integer.
// The zero Value is the number zero and is ready to use.
type Value struct {
	limbs []Limb // least-significant first
}

// Zero returns the canonical zero value.
func Zero() Value {
	return Value{}
}

// FromLimbs builds a Value from raw limbs, least-significant first. The input
// is copied and trimmed. Limbs above MaxLimb are not detected and produce
// undefined arithmetic results.
func FromLimbs(limbs ...Limb) Value {
	n := trimmedLen(limbs)
	if n == 0 {
		return Value{}
	}
	z := make([]Limb, n)
	copy(z, limbs)
	return Value{limbs: z}
}

// FromUint64 converts x, which may exceed Base, to a Value.
func FromUint64(x uint64) Value {
	if x == 0 {
		return Value{}
	}
	if x < Base {
		return Value{limbs: []Limb{x}}
	}
	return Value{limbs: []Limb{x % Base, x / Base}}
}

// IsZero reports whether v is zero. Both the empty sequence and a single zero
// limb count as zero.
func (v Value) IsZero() bool {
	return len(v.limbs) == 0 || (len(v.limbs) == 1 && v.limbs[0] == 0)
}

// Size returns the number of limbs in v.
func (v Value) Size() int {
	return len(v.limbs)
}

// ByteLength returns Size()*8, saturating at math.MaxInt.
func (v Value) ByteLength() int {
	n := len(v.limbs)
	if n > math.MaxInt/limbBytes {
		return math.MaxInt
	}
	return n * limbBytes
}

// Limb returns the i-th limb of v, or zero when i is out of range.
func (v Value) Limb(i int) Limb {
	if i < 0 || i >= len(v.limbs) {
		return 0
	}
	return v.limbs[i]
}

// Limbs returns a copy of the limbs of v, least-significant first.
func (v Value) Limbs() []Limb {
	if len(v.limbs) == 0 {
		return nil
	}
	out := make([]Limb, len(v.limbs))
	copy(out, v.limbs)
	return out
}

// Trim returns v without its most-significant zero limbs.
func (v Value) Trim() Value {
	n := trimmedLen(v.limbs)
	if n == 0 {
		return Value{}
	}
	return Value{limbs: v.limbs[:n]}
}

// Round keeps the n most-significant limbs of v and drops the rest. It
// truncates: no carry is applied for the discarded low limbs.
// v.Round(n) returns v when n >= v.Size() and zero when n <= 0.
func (v Value) Round(n int) Value {
	v = v.Trim()
	if n <= 0 {
		return Value{}
	}
	if n >= len(v.limbs) {
		return v
	}
	return Value{limbs: v.limbs[len(v.limbs)-n:]}
}

// trimmedLen returns the length of limbs without its most-significant zeros.
func trimmedLen(limbs []Limb) int {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	return n
}

// trimLimbs reslices limbs to drop its most-significant zeros.
func trimLimbs(limbs []Limb) []Limb {
	n := trimmedLen(limbs)
	if n == 0 {
		return nil
	}
	return limbs[:n]
}

// shiftLimbs returns a·Base^shift as a fresh limb slice.
func shiftLimbs(a []Limb, shift int) []Limb {
	if len(a) == 0 {
		return nil
	}
	if shift <= 0 {
		return a
	}
	z := make([]Limb, len(a)+shift)
	copy(z[shift:], a)
	return z
}
