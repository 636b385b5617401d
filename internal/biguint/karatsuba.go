package biguint

import "golang.org/x/sync/errgroup"

// karatsuba returns x·y by splitting both operands at half of the longer
// one and forming three sub-products:
//
//	z0 = x0·y0
//	z2 = x1·y1
//	z1 = (x0+x1)(y0+y1) - z0 - z2
//	x·y = z2·B^(2h) + z1·B^h + z0
//
// Steps whose shorter operand is below the cutoff, or that reach
// maxKaratsubaDepth, use schoolbook multiplication.
func (m *Multiplier) karatsuba(x, y []Limb, depth int) []Limb {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	if min(len(x), len(y)) < m.thresholds.KaratsubaCutoff || depth >= maxKaratsubaDepth {
		return schoolbookMul(x, y)
	}

	half := (max(len(x), len(y)) + 1) / 2
	x0, x1 := splitLimbs(x, half)
	y0, y1 := splitLimbs(y, half)
	xs := Add(Value{limbs: x0}, Value{limbs: x1}).limbs
	ys := Add(Value{limbs: y0}, Value{limbs: y1}).limbs

	var z0, z2, cross []Limb
	if depth < parallelDepth && m.parallel(x, y) {
		var g errgroup.Group
		g.Go(func() error {
			z0 = m.karatsuba(x0, y0, depth+1)
			return nil
		})
		g.Go(func() error {
			z2 = m.karatsuba(x1, y1, depth+1)
			return nil
		})
		g.Go(func() error {
			cross = m.karatsuba(xs, ys, depth+1)
			return nil
		})
		_ = g.Wait()
	} else {
		z0 = m.karatsuba(x0, y0, depth+1)
		z2 = m.karatsuba(x1, y1, depth+1)
		cross = m.karatsuba(xs, ys, depth+1)
	}

	lo, hi := Value{limbs: z0}, Value{limbs: z2}
	mid := Sub(Sub(Value{limbs: cross}, lo), hi)
	return AddShifted(hi, AddShifted(mid, lo, half), 2*half).limbs
}

// splitLimbs splits x into its low half limbs (trimmed) and the rest.
func splitLimbs(x []Limb, half int) (lo, hi []Limb) {
	if len(x) <= half {
		return x, nil
	}
	return trimLimbs(x[:half]), x[half:]
}
