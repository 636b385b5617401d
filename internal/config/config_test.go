package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigcalc/internal/biguint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()
	var stderr bytes.Buffer
	cfg, err := ParseConfig("bigcalc", []string{"12", "34"}, &stderr)
	if err != nil {
		t.Fatalf("ParseConfig: %v (stderr=%q)", err, stderr.String())
	}
	if cfg.Operation != OpMul {
		t.Errorf("Operation = %q, want %q", cfg.Operation, OpMul)
	}
	if cfg.Algo != "auto" {
		t.Errorf("Algo = %q, want auto", cfg.Algo)
	}
	if cfg.A != "12" || cfg.B != "34" {
		t.Errorf("operands = (%q, %q), want (12, 34)", cfg.A, cfg.B)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.GCMode != GCAuto {
		t.Errorf("GCMode = %q, want %q", cfg.GCMode, GCAuto)
	}
	if cfg.Seed != 1 {
		t.Errorf("Seed = %d, want 1", cfg.Seed)
	}
}

func TestParseConfigFlags(t *testing.T) {
	t.Parallel()
	args := []string{
		"-op", "ADD", "-shift", "2", "-algo", "NTT", "-round", "3",
		"-karatsuba-threshold", "100", "-ntt-threshold", "200",
		"-karatsuba-cutoff", "8", "-parallel-threshold", "-1",
		"-timeout", "10s", "-v", "-d", "-quiet", "-no-color", "-metrics",
		"-o", "out.txt", "-gc", "aggressive", "-seed", "42",
		"5", "7",
	}
	cfg, err := ParseConfig("bigcalc", args, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := AppConfig{
		Operation: OpAdd, A: "5", B: "7", Shift: 2, Algo: "ntt", Round: 3,
		KaratsubaThreshold: 100, NTTThreshold: 200, KaratsubaCutoff: 8, ParallelThreshold: -1,
		Timeout: 10 * time.Second, Verbose: true, Details: true, Quiet: true, NoColor: true,
		Metrics: true, OutputFile: "out.txt", GCMode: GCAggressive, Seed: 42,
	}
	if cfg != want {
		t.Errorf("ParseConfig =\n%+v\nwant\n%+v", cfg, want)
	}
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{"unknown_op", []string{"-op", "div", "1", "2"}, "op"},
		{"unknown_algo", []string{"-algo", "fft", "1", "2"}, "algo"},
		{"unknown_gc", []string{"-gc", "sometimes", "1", "2"}, "gc"},
		{"negative_shift", []string{"-shift", "-1", "1", "2"}, "shift"},
		{"negative_round", []string{"-round", "-2", "1", "2"}, "round"},
		{"zero_timeout", []string{"-timeout", "0s", "1", "2"}, "timeout"},
		{"missing_operand", []string{"1"}, "operands"},
		{"no_operands", []string{}, "operands"},
		{"negative_karatsuba", []string{"-karatsuba-threshold", "-5", "1", "2"}, "thresholds"},
		{"negative_cutoff", []string{"-karatsuba-cutoff", "-1", "1", "2"}, "thresholds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stderr bytes.Buffer
			_, err := ParseConfig("bigcalc", tt.args, &stderr)
			var verr apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
			if !strings.Contains(stderr.String(), "Error:") {
				t.Errorf("stderr = %q, want an error line", stderr.String())
			}
		})
	}
}

func TestParseConfigDefersThresholdConsistency(t *testing.T) {
	t.Parallel()
	// A Karatsuba threshold above the default NTT threshold is valid as long
	// as a later source (profile, estimate) raises the NTT threshold.
	cfg, err := ParseConfig("bigcalc", []string{"-karatsuba-threshold", "20000", "1", "2"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.KaratsubaThreshold != 20000 || cfg.NTTThreshold != 0 {
		t.Errorf("thresholds = %d/%d, want 20000/unset", cfg.KaratsubaThreshold, cfg.NTTThreshold)
	}
}

func TestParseConfigTooManyOperands(t *testing.T) {
	t.Parallel()
	_, err := ParseConfig("bigcalc", []string{"1", "2", "3"}, &bytes.Buffer{})
	var cerr apperrors.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
	if got := apperrors.ExitCode(err); got != apperrors.ExitErrorConfig {
		t.Errorf("ExitCode = %d, want %d", got, apperrors.ExitErrorConfig)
	}
}

func TestParseConfigRandomOperands(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("bigcalc", []string{"-random-limbs", "4"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.RandomLimbs != 4 || cfg.A != "" || cfg.B != "" {
		t.Errorf("cfg = %+v, want random operands only", cfg)
	}
}

func TestParseConfigVersionSkipsValidation(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("bigcalc", []string{"-version"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if !cfg.ShowVersion {
		t.Error("ShowVersion = false, want true")
	}
}

func TestParseConfigUnknownFlag(t *testing.T) {
	t.Parallel()
	var stderr bytes.Buffer
	if _, err := ParseConfig("bigcalc", []string{"-bogus"}, &stderr); err == nil {
		t.Fatal("ParseConfig accepted an unknown flag")
	}
	if !strings.Contains(stderr.String(), "Usage: bigcalc") {
		t.Errorf("stderr = %q, want usage text", stderr.String())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"OP", "sub")
	t.Setenv(EnvPrefix+"ALGO", "karatsuba")
	t.Setenv(EnvPrefix+"SHIFT", "3")
	t.Setenv(EnvPrefix+"TIMEOUT", "1m")
	t.Setenv(EnvPrefix+"QUIET", "yes")
	t.Setenv(EnvPrefix+"NTT_THRESHOLD", "not-a-number")
	t.Setenv(EnvPrefix+"SEED", "99")

	cfg, err := ParseConfig("bigcalc", []string{"-shift", "1", "9", "4"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Operation != OpSub {
		t.Errorf("Operation = %q, want sub", cfg.Operation)
	}
	if cfg.Algo != "karatsuba" {
		t.Errorf("Algo = %q, want karatsuba", cfg.Algo)
	}
	if cfg.Shift != 1 {
		t.Errorf("Shift = %d, want the flag value 1", cfg.Shift)
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %v, want 1m", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet = false, want true")
	}
	if cfg.NTTThreshold != 0 {
		t.Errorf("NTTThreshold = %d, want unparsed value ignored", cfg.NTTThreshold)
	}
	if cfg.Seed != 99 {
		t.Errorf("Seed = %d, want 99", cfg.Seed)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{" no ", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestThresholdsConversion(t *testing.T) {
	t.Parallel()
	if got := (AppConfig{}).Thresholds(); got != biguint.DefaultThresholds() {
		t.Errorf("zero config Thresholds = %+v, want defaults", got)
	}
	cfg := AppConfig{KaratsubaThreshold: 64, NTTThreshold: 128, KaratsubaCutoff: 6, ParallelThreshold: -1}
	want := biguint.Thresholds{KaratsubaBytes: 64, NTTBytes: 128, KaratsubaCutoff: 6, ParallelBytes: 0}
	if got := cfg.Thresholds(); got != want {
		t.Errorf("Thresholds = %+v, want %+v", got, want)
	}
}

func TestApplyAdaptiveThresholds(t *testing.T) {
	t.Parallel()
	cfg := ApplyAdaptiveThresholds(AppConfig{})
	if cfg.KaratsubaThreshold != EstimateOptimalKaratsubaThreshold() {
		t.Errorf("KaratsubaThreshold = %d, want %d", cfg.KaratsubaThreshold, EstimateOptimalKaratsubaThreshold())
	}
	if cfg.NTTThreshold != EstimateOptimalNTTThreshold() {
		t.Errorf("NTTThreshold = %d, want %d", cfg.NTTThreshold, EstimateOptimalNTTThreshold())
	}
	if cfg.ParallelThreshold != EstimateOptimalParallelThreshold() {
		t.Errorf("ParallelThreshold = %d, want %d", cfg.ParallelThreshold, EstimateOptimalParallelThreshold())
	}
	if err := cfg.Thresholds().Validate(); err != nil {
		t.Errorf("adaptive thresholds invalid: %v", err)
	}

	user := ApplyAdaptiveThresholds(AppConfig{KaratsubaThreshold: 7, NTTThreshold: 9, ParallelThreshold: 11})
	if user.KaratsubaThreshold != 7 || user.NTTThreshold != 9 || user.ParallelThreshold != 11 {
		t.Errorf("user thresholds overwritten: %+v", user)
	}
}
