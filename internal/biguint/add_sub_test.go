package biguint

import (
	"math/big"
	"testing"
)

func TestAddCarry(t *testing.T) {
	t.Parallel()
	assertLimbs(t, Add(FromLimbs(MaxLimb), FromLimbs(1)), 0, 1)
	assertLimbs(t, Add(FromLimbs(MaxLimb, MaxLimb), FromLimbs(MaxLimb, MaxLimb)), MaxLimb-1, MaxLimb, 1)
	assertLimbs(t, Add(FromLimbs(MaxLimb, MaxLimb, MaxLimb), FromLimbs(1)), 0, 0, 0, 1)
}

func TestSubBorrow(t *testing.T) {
	t.Parallel()
	assertLimbs(t, Sub(FromLimbs(0, 1), FromLimbs(1)), MaxLimb)
	assertLimbs(t, Sub(FromLimbs(0, 0, 1), FromLimbs(1)), MaxLimb, MaxLimb)
	assertLimbs(t, Sub(FromLimbs(5, 3), FromLimbs(7, 1)), MaxLimb-1, 1)
}

func TestSubSaturates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b Value
	}{
		{"smaller minuend", FromLimbs(1), FromLimbs(2)},
		{"shorter minuend", FromLimbs(MaxLimb), FromLimbs(0, 1)},
		{"equal operands", FromLimbs(4, 5, 6), FromLimbs(4, 5, 6)},
		{"zero minuend", Zero(), FromLimbs(9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sub(tt.a, tt.b); !got.IsZero() || got.Size() != 0 {
				t.Errorf("Sub(%v, %v) = %v, want zero", tt.a.limbs, tt.b.limbs, got.limbs)
			}
		})
	}
}

func TestAddShifted(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		a, b  Value
		shift int
		want  []Limb
	}{
		{"zero b returns shifted a", FromLimbs(7), Zero(), 2, []Limb{0, 0, 7}},
		{"zero a returns b", Zero(), FromLimbs(1, 2), 3, []Limb{1, 2}},
		{"disjoint positions", FromLimbs(9), FromLimbs(1, 2), 2, []Limb{1, 2, 9}},
		{"overlap with carry", FromLimbs(MaxLimb), FromLimbs(0, 1), 1, []Limb{0, 0, 1}},
		{"b longer than shifted a", FromLimbs(1), FromLimbs(1, 2, 3, 4), 1, []Limb{1, 3, 3, 4}},
		{"negative shift is zero", FromLimbs(1), FromLimbs(2), -5, []Limb{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := AddShifted(tt.a, tt.b, tt.shift)
			assertLimbs(t, got, tt.want...)
			assertNormalized(t, got)
		})
	}
}

func TestSubShifted(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		a, b  Value
		shift int
		want  []Limb
	}{
		{"zero b returns shifted a", FromLimbs(3), Zero(), 1, []Limb{0, 3}},
		{"borrow across shift", FromLimbs(1), FromLimbs(1), 1, []Limb{MaxLimb}},
		{"shifted equal saturates", FromLimbs(7), FromLimbs(0, 7), 1, nil},
		{"shifted smaller saturates", FromLimbs(7), FromLimbs(1, 7), 1, nil},
		{"high limbs cancel", FromLimbs(5, 5), FromLimbs(1, 0, 5), 1, []Limb{MaxLimb, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SubShifted(tt.a, tt.b, tt.shift)
			assertLimbs(t, got, tt.want...)
			assertNormalized(t, got)
		})
	}
}

func TestAddSubAgainstBig(t *testing.T) {
	t.Parallel()
	rng := newTestRand(t)
	shiftFactor := new(big.Int)
	for i := 0; i < 300; i++ {
		a := randomValue(rng, 1+rng.IntN(12))
		b := randomValue(rng, 1+rng.IntN(12))
		shift := rng.IntN(4)

		ba, bb := toBig(a), toBig(b)
		shiftFactor.Exp(bigBase, big.NewInt(int64(shift)), nil)
		shifted := new(big.Int).Mul(ba, shiftFactor)

		sum := AddShifted(a, b, shift)
		if want := new(big.Int).Add(shifted, bb); toBig(sum).Cmp(want) != 0 {
			t.Fatalf("AddShifted(%v, %v, %d) = %s, want %s", a.limbs, b.limbs, shift, toBig(sum), want)
		}
		assertNormalized(t, sum)

		diff := SubShifted(a, b, shift)
		want := new(big.Int).Sub(shifted, bb)
		if want.Sign() < 0 {
			want.SetInt64(0)
		}
		if toBig(diff).Cmp(want) != 0 {
			t.Fatalf("SubShifted(%v, %v, %d) = %s, want %s", a.limbs, b.limbs, shift, toBig(diff), want)
		}
		assertNormalized(t, diff)
	}
}

func TestAddDoesNotMutateOperands(t *testing.T) {
	t.Parallel()
	a := FromLimbs(MaxLimb, MaxLimb)
	b := FromLimbs(1)
	_ = Add(a, b)
	_ = Sub(a, b)
	assertLimbs(t, a, MaxLimb, MaxLimb)
	assertLimbs(t, b, 1)
}
