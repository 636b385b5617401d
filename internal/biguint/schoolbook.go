package biguint

import "math/bits"

// schoolbookMul returns x·y using the quadratic algorithm.
//
// Each step accumulates x[i]·y[j] + z[i+j] + carry in a 128-bit
// intermediate. With all limbs at most MaxLimb the sum is at most Base²-1,
// so the high word stays below Base and bits.Div64 cannot overflow.
func schoolbookMul(x, y []Limb) []Limb {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]Limb, len(x)+len(y))
	for j, yj := range y {
		if yj == 0 {
			continue
		}
		var carry uint64
		for i, xi := range x {
			hi, lo := bits.Mul64(xi, yj)
			var c uint64
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			carry, z[i+j] = bits.Div64(hi, lo, Base)
		}
		z[j+len(x)] = carry
	}
	return trimLimbs(z)
}
