package biguint

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Strategy identifies a multiplication algorithm.
type Strategy uint8

const (
	// StrategyAuto selects an algorithm from the operand sizes.
	StrategyAuto Strategy = iota
	// StrategySchoolbook is the quadratic limb-by-limb algorithm.
	StrategySchoolbook
	// StrategyKaratsuba is the three-product divide-and-conquer algorithm.
	StrategyKaratsuba
	// StrategyNTT is the number-theoretic transform convolution.
	StrategyNTT
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("unknown multiplication strategy")

var strategyNames = [...]string{
	StrategyAuto:       "auto",
	StrategySchoolbook: "schoolbook",
	StrategyKaratsuba:  "karatsuba",
	StrategyNTT:        "ntt",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy returns the Strategy named by name (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return StrategyAuto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies returns the concrete multiplication algorithms, in dispatch
// order.
func Strategies() []Strategy {
	return []Strategy{StrategySchoolbook, StrategyKaratsuba, StrategyNTT}
}

// Thresholds configures strategy selection. Byte lengths refer to the
// smaller operand.
type Thresholds struct {
	// KaratsubaBytes is the byte length from which Karatsuba is used.
	KaratsubaBytes int
	// NTTBytes is the byte length from which the NTT multiplier is used.
	NTTBytes int
	// KaratsubaCutoff is the limb count below which a Karatsuba step falls
	// back to schoolbook multiplication.
	KaratsubaCutoff int
	// ParallelBytes is the byte length from which work is spread over
	// goroutines. Zero or negative disables parallelism.
	ParallelBytes int
}

// DefaultThresholds returns the built-in dispatch thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		KaratsubaBytes:  DefaultKaratsubaThreshold,
		NTTBytes:        DefaultNTTThreshold,
		KaratsubaCutoff: DefaultKaratsubaCutoff,
		ParallelBytes:   DefaultParallelThreshold,
	}
}

// Validate reports whether t describes a usable dispatch configuration.
func (t Thresholds) Validate() error {
	switch {
	case t.KaratsubaBytes <= 0:
		return fmt.Errorf("karatsuba threshold must be positive, got %d", t.KaratsubaBytes)
	case t.NTTBytes < t.KaratsubaBytes:
		return fmt.Errorf("ntt threshold (%d) must not be below karatsuba threshold (%d)", t.NTTBytes, t.KaratsubaBytes)
	case t.KaratsubaCutoff < minKaratsubaCutoff:
		return fmt.Errorf("karatsuba cutoff must be at least %d limbs, got %d", minKaratsubaCutoff, t.KaratsubaCutoff)
	}
	return nil
}

// Select returns the strategy used for a·b, based on the byte length of the
// smaller operand, not the combined or larger size: a long operand times a
// short one stays on schoolbook.
func (t Thresholds) Select(a, b Value) Strategy {
	size := min(a.ByteLength(), b.ByteLength())
	switch {
	case size < t.KaratsubaBytes:
		return StrategySchoolbook
	case size < t.NTTBytes:
		return StrategyKaratsuba
	default:
		return StrategyNTT
	}
}

// Observer receives one notification per top-level multiplication.
type Observer interface {
	ObserveMul(strategy Strategy, limbs int, elapsed time.Duration)
}

// Multiplier multiplies Values with a fixed dispatch configuration.
// It is safe for concurrent use.
type Multiplier struct {
	thresholds Thresholds
	observer   Observer
	logger     zerolog.Logger
}

// Option configures a Multiplier.
type Option func(*Multiplier)

// WithThresholds sets the dispatch thresholds. A cutoff below the minimum
// is raised to it.
func WithThresholds(t Thresholds) Option {
	return func(m *Multiplier) { m.thresholds = t }
}

// WithObserver registers an observer notified after every multiplication.
func WithObserver(o Observer) Option {
	return func(m *Multiplier) { m.observer = o }
}

// WithLogger sets the logger used for dispatch debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Multiplier) { m.logger = l }
}

// NewMultiplier creates a Multiplier with DefaultThresholds and no observer.
func NewMultiplier(opts ...Option) *Multiplier {
	m := &Multiplier{thresholds: DefaultThresholds(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(m)
	}
	if m.thresholds.KaratsubaCutoff < minKaratsubaCutoff {
		m.thresholds.KaratsubaCutoff = minKaratsubaCutoff
	}
	return m
}

// Thresholds returns the dispatch thresholds of m.
func (m *Multiplier) Thresholds() Thresholds {
	return m.thresholds
}

// Mul returns a·b using the strategy selected by m's thresholds.
func (m *Multiplier) Mul(a, b Value) Value {
	return m.MulWith(StrategyAuto, a, b)
}

// MulWith returns a·b computed with the given strategy. StrategyAuto
// defers to the thresholds.
func (m *Multiplier) MulWith(s Strategy, a, b Value) Value {
	x, y := trimLimbs(a.limbs), trimLimbs(b.limbs)
	if len(x) == 0 || len(y) == 0 {
		return Value{}
	}
	if s == StrategyAuto {
		s = m.thresholds.Select(Value{limbs: x}, Value{limbs: y})
	}

	m.logger.Debug().
		Str("strategy", s.String()).
		Int("limbs_a", len(x)).
		Int("limbs_b", len(y)).
		Msg("multiplication dispatched")

	start := time.Now()
	var z []Limb
	switch s {
	case StrategyKaratsuba:
		z = m.karatsuba(x, y, 0)
	case StrategyNTT:
		z = nttMul(x, y, m.parallel(x, y))
	default:
		z = schoolbookMul(x, y)
	}
	if m.observer != nil {
		m.observer.ObserveMul(s, len(x)+len(y), time.Since(start))
	}
	return Value{limbs: z}
}

// parallel reports whether operands of these sizes should be processed
// concurrently.
func (m *Multiplier) parallel(x, y []Limb) bool {
	t := m.thresholds.ParallelBytes
	return t > 0 && min(len(x), len(y))*limbBytes >= t
}

var defaultMultiplier = NewMultiplier()

// Mul returns a·b using the default thresholds.
func Mul(a, b Value) Value {
	return defaultMultiplier.Mul(a, b)
}

// MulWith returns a·b computed with strategy s and the default thresholds.
func MulWith(s Strategy, a, b Value) Value {
	return defaultMultiplier.MulWith(s, a, b)
}
