package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary end to end.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	tmpDir := t.TempDir()
	binName := "bigcalc"
	if runtime.GOOS == "windows" {
		binName = "bigcalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as working directory.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/bigcalc")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build bigcalc: %v", err)
	}

	profile := filepath.Join(tmpDir, "profile.toml")
	if err := os.WriteFile(profile, []byte("[thresholds]\nkaratsuba_bytes = 16\nntt_bytes = 64\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// 10^40 - 1 squared, as printed by math/big.
	const nines = "9999999999999999999999999999999999999999"
	const ninesSquared = "99999999999999999999999999999999999999980000000000000000000000000000000000000001"

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:    "Basic Multiplication",
			args:    []string{"-q", "12345678901234567890", "98765432109876543210"},
			wantOut: "1219326311370217952237463801111263526900",
		},
		{
			name:    "Add With Carry",
			args:    []string{"-q", "-op", "add", "9999999999999999999", "1"},
			wantOut: "10000000000000000000",
		},
		{
			name:    "Add Shifted",
			args:    []string{"-q", "-op", "add", "-shift", "1", "1", "5"},
			wantOut: "10000000000000000005",
		},
		{
			name:    "Saturating Subtraction",
			args:    []string{"-q", "-op", "sub", "3", "5"},
			wantOut: "0",
		},
		{
			name:    "Compare",
			args:    []string{"-q", "-op", "cmp", "100", "0099"},
			wantOut: "1",
		},
		{
			name:    "All Strategies Cross-check",
			args:    []string{"-algo", "all", nines, nines},
			wantOut: "Comparison Summary",
		},
		{
			name:    "NTT Strategy",
			args:    []string{"-q", "-algo", "ntt", nines, nines},
			wantOut: ninesSquared,
		},
		{
			name:    "Profile Thresholds",
			args:    []string{"-q", "-profile", profile, nines, nines},
			wantOut: ninesSquared,
		},
		{
			name:    "Environment Override",
			args:    []string{nines, nines},
			env:     []string{"BIGCALC_QUIET=1", "BIGCALC_ALGO=karatsuba"},
			wantOut: ninesSquared,
		},
		{
			name:    "Details And Metrics",
			args:    []string{"-d", "-metrics", "-random-limbs", "40"},
			wantOut: "Multiplication Metrics",
		},
		{
			name:    "Help",
			args:    []string{"-help"},
			wantOut: "usage",
		},
		{
			name:     "Invalid Digit",
			args:     []string{"12a4", "5"},
			wantOut:  "invalid decimal digit",
			wantCode: 4,
		},
		{
			name:     "Unknown Strategy",
			args:     []string{"-algo", "fft", "1", "2"},
			wantOut:  "unknown multiplication strategy",
			wantCode: 4,
		},
		{
			name:     "Missing Operand",
			args:     []string{"7"},
			wantOut:  "operands",
			wantCode: 4,
		},
		{
			name:    "Version Flag",
			args:    []string{"--version"},
			wantOut: "bigcalc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(append(os.Environ(), "NO_COLOR=1"), tt.env...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running bigcalc: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
