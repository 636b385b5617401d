package biguint

import (
	"math/bits"

	"golang.org/x/sync/errgroup"
)

// nttMul returns x·y through a number-theoretic transform.
//
// Both operands are regrouped into base-10^k sub-words, with k the widest
// width for which every convolution coefficient stays below the modulus:
// min(len) · (10^k - 1)² < p. The coefficients are then carried in base 10^k
// and packed back into 19-digit limbs.
func nttMul(x, y []Limb, parallel bool) []Limb {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if len(x)+len(y) < nttMinCombinedLimbs {
		return schoolbookMul(x, y)
	}
	square := sameLimbs(x, y)

	dx, dy := decimalLen(x), decimalLen(y)
	k := subWordDigits(min(dx, dy))
	wx := ceilDiv(dx, k)
	wy := ceilDiv(dy, k)
	n := 1 << bits.Len(uint(wx+wy-2))
	if bits.TrailingZeros(uint(n)) > nttMaxLog {
		// Beyond 2^57 points; unreachable with addressable memory.
		panic("biguint: operands too large for the NTT modulus")
	}

	fx := acquireWordBuffer(n)
	defer releaseWordBuffer(fx)
	splitSubWords(x, k, wx, fx)

	fy := fx
	if !square {
		fy = acquireWordBuffer(n)
		defer releaseWordBuffer(fy)
		splitSubWords(y, k, wy, fy)
	}

	if square || !parallel {
		ntt(fx, false)
		if !square {
			ntt(fy, false)
		}
	} else {
		var g errgroup.Group
		g.Go(func() error {
			ntt(fx, false)
			return nil
		})
		g.Go(func() error {
			ntt(fy, false)
			return nil
		})
		_ = g.Wait()
	}

	for i := range fx {
		fx[i] = mulMod(fx[i], fy[i])
	}
	ntt(fx, true)

	return joinSubWords(fx[:wx+wy-1], k)
}

// ntt transforms a in place. len(a) must be a power of two. The inverse
// transform includes the scaling by len(a)^-1.
func ntt(a []uint64, inverse bool) {
	n := len(a)
	if n <= 1 {
		return
	}
	shift := 64 - bits.TrailingZeros(uint(n))
	for i := range a {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	twiddles := acquireWordBuffer(n / 2)
	defer releaseWordBuffer(twiddles)

	for length := 2; length <= n; length <<= 1 {
		half := length / 2
		w := rootOfUnity(length, inverse)
		twiddles[0] = 1
		for j := 1; j < half; j++ {
			twiddles[j] = mulMod(twiddles[j-1], w)
		}
		for start := 0; start < n; start += length {
			lo := a[start : start+half]
			hi := a[start+half : start+length]
			for j := range lo {
				u := lo[j]
				v := mulMod(hi[j], twiddles[j])
				lo[j] = addMod(u, v)
				hi[j] = subMod(u, v)
			}
		}
	}

	if inverse {
		nInv := invMod(uint64(n))
		for i := range a {
			a[i] = mulMod(a[i], nInv)
		}
	}
}

// subWordDigits picks the sub-word width in decimal digits for a convolution
// whose shorter operand has shortDigits digits.
func subWordDigits(shortDigits int) int {
	for k := nttMaxSubWordDigits; k > 1; k-- {
		words := uint64(ceilDiv(shortDigits, k))
		top := pow10[k] - 1
		hi, lo := bits.Mul64(top*top, words)
		if hi == 0 && lo < nttModulus {
			return k
		}
	}
	return 1
}

// splitSubWords writes the first count base-10^k words of x into dst,
// least-significant first. A word may straddle two limbs.
func splitSubWords(x []Limb, k, count int, dst []uint64) {
	for j := 0; j < count; j++ {
		d := j * k
		l, off := d/LimbDigits, d%LimbDigits
		var lo, next Limb
		if l < len(x) {
			lo = x[l]
		}
		if l+1 < len(x) {
			next = x[l+1]
		}
		w := lo / pow10[off]
		if rest := LimbDigits - off; rest < k {
			w += (next % pow10[k-rest]) * pow10[rest]
		} else {
			w %= pow10[k]
		}
		dst[j] = w
	}
}

// joinSubWords carries the convolution coefficients in base 10^k and packs
// the resulting digits into limbs.
func joinSubWords(coeffs []uint64, k int) []Limb {
	radix := pow10[k]
	words := make([]uint64, len(coeffs)+1)
	var carry uint64
	for i, c := range coeffs {
		cur := c + carry
		words[i] = cur % radix
		carry = cur / radix
	}
	// The product of an a-word and a b-word number has at most a+b words,
	// so a single extra word absorbs the final carry.
	words[len(coeffs)] = carry

	z := make([]Limb, ceilDiv(len(words)*k, LimbDigits)+1)
	for j, w := range words {
		if w == 0 {
			continue
		}
		d := j * k
		l, off := d/LimbDigits, d%LimbDigits
		if rest := LimbDigits - off; rest < k {
			z[l] += (w % pow10[rest]) * pow10[off]
			z[l+1] += w / pow10[rest]
		} else {
			z[l] += w * pow10[off]
		}
	}
	return trimLimbs(z)
}

// decimalLen returns the number of decimal digits of a trimmed, non-empty x.
func decimalLen(x []Limb) int {
	return (len(x)-1)*LimbDigits + limbDigits(x[len(x)-1])
}

// limbDigits returns the number of decimal digits of l, at least 1.
func limbDigits(l Limb) int {
	n := 1
	for n < LimbDigits && l >= pow10[n] {
		n++
	}
	return n
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// sameLimbs reports whether x and y are the same slice.
func sameLimbs(x, y []Limb) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}
