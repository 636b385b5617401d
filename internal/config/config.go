// Package config parses and validates the bigcalc command-line configuration.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/biguint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// EnvPrefix is the prefix of every environment variable read by bigcalc.
const EnvPrefix = "BIGCALC_"

// Operation names accepted by the -op flag.
const (
	OpAdd = "add"
	OpSub = "sub"
	OpMul = "mul"
	OpCmp = "cmp"
)

// AlgoAll runs every multiplication strategy and cross-checks the products.
const AlgoAll = "all"

// GC modes accepted by the -gc flag.
const (
	GCAuto       = "auto"
	GCAggressive = "aggressive"
	GCDisabled   = "disabled"
)

// DefaultTimeout bounds a single evaluation.
const DefaultTimeout = 5 * time.Minute

// AppConfig holds the resolved configuration of one bigcalc invocation.
type AppConfig struct {
	// Operation is one of add, sub, mul or cmp.
	Operation string
	// A and B are the decimal operands.
	A, B string
	// Shift is the limb shift applied to A for add and sub.
	Shift int
	// Algo is a biguint strategy name or "all".
	Algo string
	// Round keeps only the given number of most-significant limbs of the
	// result when positive.
	Round int

	// Dispatch thresholds. Zero means "not set" and is resolved later by the
	// profile, adaptive estimation or built-in defaults.
	KaratsubaThreshold int
	NTTThreshold       int
	KaratsubaCutoff    int
	ParallelThreshold  int

	// Profile is the path of a TOML threshold profile to load.
	Profile string
	// SaveProfile is the path where the effective thresholds are written.
	SaveProfile string

	Timeout    time.Duration
	Verbose    bool
	Details    bool
	Quiet      bool
	NoColor    bool
	Metrics    bool
	OutputFile string
	GCMode     string

	// RandomLimbs, when positive, replaces missing operands with random
	// values of that many limbs.
	RandomLimbs int
	Seed        uint64

	ShowVersion bool
}

// Thresholds returns the dispatch thresholds carried by the configuration,
// filling unset fields from biguint.DefaultThresholds.
func (c AppConfig) Thresholds() biguint.Thresholds {
	t := biguint.DefaultThresholds()
	if c.KaratsubaThreshold > 0 {
		t.KaratsubaBytes = c.KaratsubaThreshold
	}
	if c.NTTThreshold > 0 {
		t.NTTBytes = c.NTTThreshold
	}
	if c.KaratsubaCutoff > 0 {
		t.KaratsubaCutoff = c.KaratsubaCutoff
	}
	if c.ParallelThreshold != 0 {
		t.ParallelBytes = max(c.ParallelThreshold, 0)
	}
	return t
}

// Validate checks the configuration for inconsistencies.
func (c AppConfig) Validate() error {
	switch c.Operation {
	case OpAdd, OpSub, OpMul, OpCmp:
	default:
		return apperrors.ValidationError{Field: "op", Message: fmt.Sprintf("unknown operation %q (want add, sub, mul or cmp)", c.Operation)}
	}
	if c.Algo != AlgoAll {
		if _, err := biguint.ParseStrategy(c.Algo); err != nil {
			return apperrors.ValidationError{Field: "algo", Message: err.Error()}
		}
	}
	switch c.GCMode {
	case GCAuto, GCAggressive, GCDisabled:
	default:
		return apperrors.ValidationError{Field: "gc", Message: fmt.Sprintf("unknown mode %q", c.GCMode)}
	}
	if c.Shift < 0 {
		return apperrors.ValidationError{Field: "shift", Message: "must be non-negative"}
	}
	if c.Round < 0 {
		return apperrors.ValidationError{Field: "round", Message: "must be non-negative"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if c.RandomLimbs < 0 {
		return apperrors.ValidationError{Field: "random-limbs", Message: "must be non-negative"}
	}
	if c.RandomLimbs == 0 && (c.A == "" || c.B == "") {
		return apperrors.ValidationError{Field: "operands", Message: "two decimal operands are required (or -random-limbs)"}
	}
	// Cross-threshold consistency is checked after ResolveThresholds, once
	// the profile and hardware estimates have filled the unset fields.
	if c.KaratsubaThreshold < 0 || c.NTTThreshold < 0 || c.KaratsubaCutoff < 0 {
		return apperrors.ValidationError{Field: "thresholds", Message: "must be non-negative"}
	}
	return nil
}

// ParseConfig parses command-line arguments, applies BIGCALC_* environment
// overrides for flags not given explicitly, and validates the result.
//
// Positional arguments are the two operands: "bigcalc [flags] A B".
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags] A B\n\n", programName)
		fmt.Fprintf(errorWriter, "Evaluates A OP B over arbitrary-precision unsigned decimal integers.\n\n")
		fmt.Fprintf(errorWriter, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(errorWriter, "\nEnvironment variables %s* override flags that are not set explicitly.\n", EnvPrefix)
	}

	config := AppConfig{}
	fs.StringVar(&config.Operation, "op", OpMul, "Operation: add, sub, mul or cmp.")
	fs.IntVar(&config.Shift, "shift", 0, "Limb shift applied to A for add and sub (A·10^(19·shift)).")
	fs.StringVar(&config.Algo, "algo", "auto", "Multiplication strategy: auto, schoolbook, karatsuba, ntt or all.")
	fs.IntVar(&config.Round, "round", 0, "Keep only this many most-significant limbs of the result (0 keeps all).")
	fs.IntVar(&config.KaratsubaThreshold, "karatsuba-threshold", 0, "Operand byte length from which Karatsuba is used (0 = auto).")
	fs.IntVar(&config.NTTThreshold, "ntt-threshold", 0, "Operand byte length from which the NTT multiplier is used (0 = auto).")
	fs.IntVar(&config.KaratsubaCutoff, "karatsuba-cutoff", 0, "Limb count below which Karatsuba recursion uses schoolbook (0 = default).")
	fs.IntVar(&config.ParallelThreshold, "parallel-threshold", 0, "Operand byte length from which work runs in parallel (0 = auto, -1 = never).")
	fs.StringVar(&config.Profile, "profile", "", "TOML threshold profile to load.")
	fs.StringVar(&config.SaveProfile, "save-profile", "", "Write the effective thresholds to this TOML file.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum evaluation time.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose output (debug logs, full result).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Verbose output (alias for -v).")
	fs.BoolVar(&config.Details, "d", false, "Show result details (limbs, digits, timings).")
	fs.BoolVar(&config.Details, "details", false, "Show result details (alias for -d).")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode: print only the result.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode (alias for -q).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print multiplication metrics after the evaluation.")
	fs.StringVar(&config.OutputFile, "o", "", "Write the result to this file.")
	fs.StringVar(&config.OutputFile, "output", "", "Write the result to this file (alias for -o).")
	fs.StringVar(&config.GCMode, "gc", GCAuto, "Garbage collector control: auto, aggressive or disabled.")
	fs.IntVar(&config.RandomLimbs, "random-limbs", 0, "Generate missing operands with this many random limbs.")
	fs.Uint64Var(&config.Seed, "seed", 1, "Seed for -random-limbs.")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version information and exit.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Operation = strings.ToLower(config.Operation)
	config.Algo = strings.ToLower(config.Algo)
	if config.ShowVersion {
		return config, nil
	}

	rest := fs.Args()
	if len(rest) > 2 {
		fmt.Fprintf(errorWriter, "Error: expected at most two operands, got %d\n", len(rest))
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("expected at most two operands, got %d", len(rest))
	}
	if len(rest) > 0 {
		config.A = rest[0]
	}
	if len(rest) > 1 {
		config.B = rest[1]
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(errorWriter, "Error: %v\n", err)
		return AppConfig{}, err
	}
	return config, nil
}
