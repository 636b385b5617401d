package biguint

import "math/bits"

// Add returns a + b.
func Add(a, b Value) Value {
	return AddShifted(a, b, 0)
}

// AddShifted returns a·Base^shift + b. A negative shift is treated as zero.
func AddShifted(a, b Value, shift int) Value {
	if shift < 0 {
		shift = 0
	}
	x, y := trimLimbs(a.limbs), trimLimbs(b.limbs)
	if len(x) == 0 {
		return Value{limbs: y}
	}
	if len(y) == 0 {
		return Value{limbs: shiftLimbs(x, shift)}
	}
	return Value{limbs: addLimbs(x, y, shift)}
}

// addLimbs computes x·Base^shift + y into a fresh slice.
func addLimbs(x, y []Limb, shift int) []Limb {
	n := max(len(x)+shift, len(y))
	z := make([]Limb, n+1)
	// Below the shift only y contributes.
	low := min(shift, len(y))
	copy(z, y[:low])
	var carry uint64
	for i := low; i < n; i++ {
		var xi, yi Limb
		if i >= shift && i-shift < len(x) {
			xi = x[i-shift]
		}
		if i < len(y) {
			yi = y[i]
		}
		// xi+yi+carry can exceed 2^64; the wrapped sum minus Base is still
		// the correct limb because the true sum is below 2·Base.
		sum, c := bits.Add64(xi, yi, carry)
		if c != 0 || sum >= Base {
			sum -= Base
			carry = 1
		} else {
			carry = 0
		}
		z[i] = sum
	}
	z[n] = carry
	return trimLimbs(z)
}

// Sub returns a - b, or zero when b >= a.
func Sub(a, b Value) Value {
	return SubShifted(a, b, 0)
}

// SubShifted returns a·Base^shift - b, saturating at zero when
// b >= a·Base^shift. A negative shift is treated as zero.
func SubShifted(a, b Value, shift int) Value {
	if shift < 0 {
		shift = 0
	}
	x, y := trimLimbs(a.limbs), trimLimbs(b.limbs)
	if len(y) == 0 {
		return Value{limbs: shiftLimbs(x, shift)}
	}
	if compareShifted(x, y, shift) <= 0 {
		return Value{}
	}
	return Value{limbs: subLimbs(x, y, shift)}
}

// subLimbs computes x·Base^shift - y. The caller guarantees the result is
// positive.
func subLimbs(x, y []Limb, shift int) []Limb {
	n := len(x) + shift
	z := make([]Limb, n)
	var borrow uint64
	for i := 0; i < n; i++ {
		var xi, yi Limb
		if i >= shift {
			xi = x[i-shift]
		}
		if i < len(y) {
			yi = y[i]
		}
		d, b := bits.Sub64(xi, yi, borrow)
		if b != 0 {
			d += Base
		}
		z[i] = d
		borrow = b
	}
	return trimLimbs(z)
}
