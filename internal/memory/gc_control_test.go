package memory

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewGCControllerActivation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		mode  string
		limbs int
		want  bool
	}{
		{"aggressive", 0, true},
		{"auto", GCAutoThreshold - 1, false},
		{"auto", GCAutoThreshold, true},
		{"disabled", 10 * GCAutoThreshold, false},
		{"bogus", 10 * GCAutoThreshold, false},
	}
	for _, tt := range tests {
		if got := NewGCController(tt.mode, tt.limbs).Active(); got != tt.want {
			t.Errorf("NewGCController(%q, %d).Active() = %v, want %v", tt.mode, tt.limbs, got, tt.want)
		}
	}
}

func TestGCControllerInactiveIsNoop(t *testing.T) {
	t.Parallel()
	gc := NewGCController("disabled", 0)
	gc.Begin()
	gc.End()
	if gc.Stats() != (GCStats{}) {
		t.Errorf("Stats = %+v, want zero", gc.Stats())
	}
}

// Not parallel: mutates process-wide GC settings.
func TestGCControllerRestoresSettings(t *testing.T) {
	before := debug.SetGCPercent(100)
	defer debug.SetGCPercent(before)
	limitBefore := debug.SetMemoryLimit(-1)

	var buf bytes.Buffer
	gc := NewGCController("aggressive", 0)
	gc.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	gc.Begin()
	if p := debug.SetGCPercent(-1); p != -1 {
		t.Errorf("GC percent during evaluation = %d, want -1", p)
	}
	sink := make([][]byte, 0, 16)
	for range 16 {
		sink = append(sink, make([]byte, 64<<10))
	}
	gc.End()

	if p := debug.SetGCPercent(100); p != 100 {
		t.Errorf("GC percent after End = %d, want 100", p)
	}
	if l := debug.SetMemoryLimit(-1); l != limitBefore {
		t.Errorf("memory limit after End = %d, want %d", l, limitBefore)
	}
	if s := gc.Stats(); s.TotalAlloc < 16*64<<10 {
		t.Errorf("TotalAlloc = %d, want at least %d", s.TotalAlloc, 16*64<<10)
	}
	logs := buf.String()
	if !strings.Contains(logs, "gc disabled") || !strings.Contains(logs, "gc re-enabled") {
		t.Errorf("logs = %q, want both gc events", logs)
	}
	_ = sink
}
