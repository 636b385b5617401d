package config

import (
	"runtime"

	"github.com/agbru/bigcalc/internal/biguint"
	"github.com/agbru/bigcalc/internal/logging"
)

// Threshold resolution chain (highest priority first):
//   1. CLI flags (-karatsuba-threshold, -ntt-threshold, ...)
//   2. Environment variables (BIGCALC_KARATSUBA_THRESHOLD, etc.)
//   3. TOML threshold profile (-profile)
//   4. Adaptive hardware estimation (this file)
//   5. Static defaults in biguint/constants.go

// ResolveThresholds fills every threshold still unset after flag and
// environment parsing, first from the profile named by cfg.Profile and then
// from hardware estimates. A profile saved on another host is still applied,
// with a warning.
func ResolveThresholds(cfg AppConfig, logger logging.Logger) (AppConfig, error) {
	if cfg.Profile != "" {
		p, err := LoadProfile(cfg.Profile)
		if err != nil {
			return cfg, err
		}
		if !p.MatchesHost() {
			logger.Warn("threshold profile was saved on a different host",
				logging.String("path", cfg.Profile),
				logging.Field{Key: "profile_cpus", Value: p.Host.NumCPU},
				logging.String("profile_arch", p.Host.GOARCH),
				logging.Int("cpus", runtime.NumCPU()),
				logging.String("arch", runtime.GOARCH),
			)
		}
		cfg = p.Apply(cfg)
		logger.Info("threshold profile loaded", logging.String("path", cfg.Profile))
	}
	return ApplyAdaptiveThresholds(cfg), nil
}

// ApplyAdaptiveThresholds adjusts the configuration thresholds based on
// hardware characteristics (CPU cores, architecture) when default values
// are detected.
//
// The function only modifies thresholds that are set to their zero default,
// preserving any user-specified overrides.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = EstimateOptimalParallelThreshold()
	}
	if cfg.NTTThreshold == 0 {
		cfg.NTTThreshold = EstimateOptimalNTTThreshold()
	}
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = EstimateOptimalKaratsubaThreshold()
	}
	return cfg
}

// EstimateOptimalParallelThreshold provides a heuristic estimate of the
// operand byte length from which multiplications fan out to goroutines.
// A negative result disables parallelism.
func EstimateOptimalParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return -1 // No parallelism
	case numCPU <= 2:
		return 4 * biguint.DefaultParallelThreshold
	case numCPU <= 4:
		return 2 * biguint.DefaultParallelThreshold
	case numCPU <= 8:
		return biguint.DefaultParallelThreshold
	default:
		return biguint.DefaultParallelThreshold / 2
	}
}

// EstimateOptimalNTTThreshold provides a heuristic estimate of the NTT
// threshold. Without 64-bit hardware multiplication the modular products
// are much slower, so the crossover moves up.
func EstimateOptimalNTTThreshold() int {
	wordSize := 32 << (^uint(0) >> 63)

	if wordSize == 64 {
		return biguint.DefaultNTTThreshold
	}
	return 4 * biguint.DefaultNTTThreshold
}

// EstimateOptimalKaratsubaThreshold provides a heuristic estimate of the
// Karatsuba threshold.
func EstimateOptimalKaratsubaThreshold() int {
	if runtime.NumCPU() >= 4 {
		return biguint.DefaultKaratsubaThreshold / 2
	}
	return biguint.DefaultKaratsubaThreshold
}
