package biguint

// ─────────────────────────────────────────────────────────────────────────────
// Limb Representation
// ─────────────────────────────────────────────────────────────────────────────

const (
	// Base is the radix of the limb representation, the largest power of ten
	// that fits in a uint64.
	Base uint64 = 10_000_000_000_000_000_000

	// MaxLimb is the largest value a single limb may hold.
	MaxLimb uint64 = Base - 1

	// LimbDigits is the number of decimal digits stored in one limb.
	LimbDigits = 19

	// limbBytes is the in-memory size of one limb.
	limbBytes = 8
)

// pow10 holds 10^i for i in [0, LimbDigits].
var pow10 = [LimbDigits + 1]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// ─────────────────────────────────────────────────────────────────────────────
// Multiplication Dispatch Defaults
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultKaratsubaThreshold is the operand byte length (of the smaller
	// operand) from which Karatsuba replaces schoolbook multiplication.
	// 512 bytes = 64 limbs.
	DefaultKaratsubaThreshold = 512

	// DefaultNTTThreshold is the operand byte length (of the smaller operand)
	// from which the NTT multiplier replaces Karatsuba.
	// 16384 bytes = 2048 limbs, roughly 39K decimal digits.
	DefaultNTTThreshold = 16384

	// DefaultKaratsubaCutoff is the limb count below which a Karatsuba
	// recursion step switches to schoolbook multiplication.
	DefaultKaratsubaCutoff = 32

	// DefaultParallelThreshold is the operand byte length from which the top
	// levels of Karatsuba and the NTT forward transforms run concurrently.
	// Zero or negative disables parallelism.
	DefaultParallelThreshold = 32768

	// minKaratsubaCutoff keeps the split halves strictly smaller than their
	// parent so the recursion always terminates.
	minKaratsubaCutoff = 4

	// maxKaratsubaDepth bounds the recursion depth regardless of operand size.
	maxKaratsubaDepth = 48

	// parallelDepth is the number of Karatsuba recursion levels allowed to
	// fan out into goroutines.
	parallelDepth = 2
)

// ─────────────────────────────────────────────────────────────────────────────
// NTT Parameters
// ─────────────────────────────────────────────────────────────────────────────

const (
	// nttModulus is the prime 29·2^57 + 1.
	nttModulus uint64 = 4179340454199820289

	// nttMaxLog is the 2-adic valuation of nttModulus-1; transforms are
	// limited to 2^nttMaxLog points.
	nttMaxLog = 57

	// nttMaxSubWordDigits is the widest decimal sub-word tried when splitting
	// limbs for the transform.
	nttMaxSubWordDigits = 8

	// nttMinCombinedLimbs is the combined operand size below which the NTT
	// multiplier falls back to schoolbook multiplication.
	nttMinCombinedLimbs = 16
)
