package biguint

import (
	"math/big"
	"math/rand/v2"
	"testing"
)

var bigBase = new(big.Int).SetUint64(Base)

// toBig converts v to a big.Int by Horner evaluation over the limbs.
func toBig(v Value) *big.Int {
	r := new(big.Int)
	for i := len(v.limbs) - 1; i >= 0; i-- {
		r.Mul(r, bigBase)
		r.Add(r, new(big.Int).SetUint64(v.limbs[i]))
	}
	return r
}

// fromBig converts a non-negative big.Int to a Value by repeated division.
func fromBig(x *big.Int) Value {
	var limbs []Limb
	q := new(big.Int).Set(x)
	r := new(big.Int)
	for q.Sign() > 0 {
		q.QuoRem(q, bigBase, r)
		limbs = append(limbs, r.Uint64())
	}
	return Value{limbs: limbs}
}

// randomValue returns a value with exactly n limbs.
func randomValue(rng *rand.Rand, n int) Value {
	if n == 0 {
		return Value{}
	}
	limbs := make([]Limb, n)
	for i := range limbs {
		limbs[i] = rng.Uint64N(Base)
	}
	limbs[n-1] = 1 + rng.Uint64N(MaxLimb)
	return Value{limbs: limbs}
}

// repeatingValue returns an n-limb value filled with a short repeating
// pattern of small limbs.
func repeatingValue(n int, pattern ...Limb) Value {
	limbs := make([]Limb, n)
	for i := range limbs {
		limbs[i] = pattern[i%len(pattern)]
	}
	if limbs[n-1] == 0 {
		limbs[n-1] = 1
	}
	return Value{limbs: limbs}
}

func newTestRand(t testing.TB) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(0x5eed, uint64(len(t.Name()))))
}

// assertNormalized fails the test if v has a most-significant zero limb.
func assertNormalized(t *testing.T, v Value) {
	t.Helper()
	if n := len(v.limbs); n > 0 && v.limbs[n-1] == 0 {
		t.Fatalf("value %v has a leading zero limb", v.limbs)
	}
}

func assertLimbs(t *testing.T, got Value, want ...Limb) {
	t.Helper()
	if len(got.limbs) != len(want) {
		t.Fatalf("limbs = %v, want %v", got.limbs, want)
	}
	for i := range want {
		if got.limbs[i] != want[i] {
			t.Fatalf("limbs = %v, want %v", got.limbs, want)
		}
	}
}
