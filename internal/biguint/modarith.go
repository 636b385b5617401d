// This file provides arithmetic modulo the NTT prime.

package biguint

import "math/bits"

// nttRoot is a primitive root modulo nttModulus, found at init time.
var nttRoot = findPrimitiveRoot()

// nttModulusFactors are the distinct prime factors of nttModulus-1 = 29·2^57.
var nttModulusFactors = [...]uint64{2, 29}

// findPrimitiveRoot returns the smallest generator of the multiplicative
// group modulo nttModulus.
func findPrimitiveRoot() uint64 {
	for g := uint64(2); ; g++ {
		if isPrimitiveRoot(g) {
			return g
		}
	}
}

// isPrimitiveRoot reports whether g generates the whole multiplicative group,
// i.e. g^((p-1)/q) != 1 for every prime factor q of p-1.
func isPrimitiveRoot(g uint64) bool {
	g %= nttModulus
	if g == 0 {
		return false
	}
	for _, q := range nttModulusFactors {
		if powMod(g, (nttModulus-1)/q) == 1 {
			return false
		}
	}
	return true
}

// addMod returns (a+b) mod p for a, b < p. p < 2^62 so the sum cannot wrap.
func addMod(a, b uint64) uint64 {
	s := a + b
	if s >= nttModulus {
		s -= nttModulus
	}
	return s
}

// subMod returns (a-b) mod p for a, b < p.
func subMod(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + nttModulus - b
}

// mulMod returns a·b mod p for a, b < p.
func mulMod(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, r := bits.Div64(hi, lo, nttModulus)
	return r
}

// powMod returns base^exp mod p.
func powMod(base, exp uint64) uint64 {
	result := uint64(1)
	base %= nttModulus
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base)
		}
		base = mulMod(base, base)
		exp >>= 1
	}
	return result
}

// invMod returns the multiplicative inverse of a modulo p (Fermat).
func invMod(a uint64) uint64 {
	return powMod(a, nttModulus-2)
}

// rootOfUnity returns a primitive n-th root of unity modulo p, or its
// inverse. n must be a power of two not exceeding 2^nttMaxLog.
func rootOfUnity(n int, inverse bool) uint64 {
	w := powMod(nttRoot, (nttModulus-1)/uint64(n))
	if inverse {
		w = invMod(w)
	}
	return w
}
