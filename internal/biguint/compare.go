package biguint

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to,
// or greater than b. Limb counts are compared first, then limbs from the most
// significant end. Leading zero limbs are ignored.
func Compare(a, b Value) int {
	return compareLimbs(trimLimbs(a.limbs), trimLimbs(b.limbs))
}

func compareLimbs(a, b []Limb) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// compareShifted compares a·Base^shift with b. Both must be trimmed.
func compareShifted(a, b []Limb, shift int) int {
	la := len(a) + shift
	if len(a) == 0 {
		la = 0
	}
	switch {
	case la < len(b):
		return -1
	case la > len(b):
		return 1
	}
	for i := la - 1; i >= 0; i-- {
		var x Limb
		if i >= shift {
			x = a[i-shift]
		}
		switch {
		case x < b[i]:
			return -1
		case x > b[i]:
			return 1
		}
	}
	return 0
}

// IsEqual reports whether a == b.
func IsEqual(a, b Value) bool { return Compare(a, b) == 0 }

// IsGreater reports whether a > b.
func IsGreater(a, b Value) bool { return Compare(a, b) > 0 }

// IsLower reports whether a < b.
func IsLower(a, b Value) bool { return Compare(a, b) < 0 }

// IsGreaterOrEqual reports whether a >= b.
func IsGreaterOrEqual(a, b Value) bool { return Compare(a, b) >= 0 }

// IsLowerOrEqual reports whether a <= b.
func IsLowerOrEqual(a, b Value) bool { return Compare(a, b) <= 0 }
