package config

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"github.com/agbru/bigcalc/internal/biguint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// Profile is a persisted set of dispatch thresholds, stored as TOML:
//
//	[thresholds]
//	karatsuba_bytes = 512
//	ntt_bytes = 16384
//	karatsuba_cutoff = 32
//	parallel_bytes = 32768
//
//	[host]
//	num_cpu = 8
//	goarch = "amd64"
//
// Threshold keys that are absent leave the corresponding setting unresolved.
type Profile struct {
	Thresholds ProfileThresholds `toml:"thresholds"`
	Host       ProfileHost       `toml:"host"`
}

// ProfileThresholds mirrors biguint.Thresholds with fixed-width fields so
// that TOML integers decode without loss.
type ProfileThresholds struct {
	KaratsubaBytes  int64 `toml:"karatsuba_bytes,omitempty"`
	NTTBytes        int64 `toml:"ntt_bytes,omitempty"`
	KaratsubaCutoff int64 `toml:"karatsuba_cutoff,omitempty"`
	ParallelBytes   int64 `toml:"parallel_bytes,omitempty"`
}

// ProfileHost records the machine a profile was produced on.
type ProfileHost struct {
	NumCPU    int64     `toml:"num_cpu"`
	GOARCH    string    `toml:"goarch"`
	GoVersion string    `toml:"go_version,omitempty"`
	Saved     time.Time `toml:"saved,omitempty"`
}

// NewProfile captures t together with the current host description.
func NewProfile(t biguint.Thresholds) Profile {
	return Profile{
		Thresholds: ProfileThresholds{
			KaratsubaBytes:  int64(t.KaratsubaBytes),
			NTTBytes:        int64(t.NTTBytes),
			KaratsubaCutoff: int64(t.KaratsubaCutoff),
			ParallelBytes:   int64(t.ParallelBytes),
		},
		Host: ProfileHost{
			NumCPU:    int64(runtime.NumCPU()),
			GOARCH:    runtime.GOARCH,
			GoVersion: runtime.Version(),
			Saved:     time.Now().UTC().Truncate(time.Second),
		},
	}
}

// MatchesHost reports whether the profile was produced on a machine with the
// same CPU count and architecture as the current one.
func (p Profile) MatchesHost() bool {
	return p.Host.NumCPU == int64(runtime.NumCPU()) && p.Host.GOARCH == runtime.GOARCH
}

// Apply copies the profile's thresholds into every unset threshold of cfg.
func (p Profile) Apply(cfg AppConfig) AppConfig {
	fill := func(dst *int, v int64) {
		if *dst != 0 || v == 0 {
			return
		}
		if n, err := safecast.Conv[int](v); err == nil {
			*dst = n
		}
	}
	fill(&cfg.KaratsubaThreshold, p.Thresholds.KaratsubaBytes)
	fill(&cfg.NTTThreshold, p.Thresholds.NTTBytes)
	fill(&cfg.KaratsubaCutoff, p.Thresholds.KaratsubaCutoff)
	fill(&cfg.ParallelThreshold, p.Thresholds.ParallelBytes)
	return cfg
}

// LoadProfile reads and validates a TOML threshold profile. Unknown keys and
// values that do not fit an int are reported as configuration errors.
func LoadProfile(path string) (Profile, error) {
	var p Profile
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, apperrors.NewConfigError("%s: failed to parse TOML: %v", path, err)
	}
	if !meta.IsDefined("thresholds") {
		return Profile{}, apperrors.NewConfigError("%s: missing [thresholds]", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Profile{}, apperrors.NewConfigError("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	for name, v := range map[string]int64{
		"karatsuba_bytes":  p.Thresholds.KaratsubaBytes,
		"ntt_bytes":        p.Thresholds.NTTBytes,
		"karatsuba_cutoff": p.Thresholds.KaratsubaCutoff,
		"parallel_bytes":   p.Thresholds.ParallelBytes,
	} {
		if _, err := safecast.Conv[int](v); err != nil {
			return Profile{}, apperrors.NewConfigError("%s: [thresholds].%s: %v", path, name, err)
		}
		if v < 0 && name != "parallel_bytes" {
			return Profile{}, apperrors.NewConfigError("%s: [thresholds].%s must be non-negative", path, name)
		}
	}
	return p, nil
}

// SaveProfile writes p to path as TOML.
func SaveProfile(path string, p Profile) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("%s: failed to encode TOML: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
