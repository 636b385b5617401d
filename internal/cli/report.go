package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/agbru/bigcalc/internal/memory"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/ui"
)

// StrategyRun is the outcome of one strategy in a cross-check run.
type StrategyRun struct {
	Name     string
	Duration time.Duration
	// Match is false when the product differs from the reference strategy.
	Match bool
}

// DisplayComparisonTable prints the cross-check summary with strategy names,
// durations and status. Manual padding keeps ANSI codes out of the width
// computation.
func DisplayComparisonTable(out io.Writer, runs []StrategyRun) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := len("Strategy")
	maxDurationLen := len("Duration")
	durations := make([]string, len(runs))
	for i, run := range runs {
		maxNameLen = max(maxNameLen, len(run.Name))
		durations[i] = FormatExecutionDuration(run.Duration)
		if run.Duration == 0 {
			durations[i] = "< 1µs"
		}
		maxDurationLen = max(maxDurationLen, len([]rune(durations[i])))
	}

	fmt.Fprintf(out, "%sStrategy%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Strategy")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for i, run := range runs {
		status := fmt.Sprintf("%s✅ Match%s", ui.ColorGreen(), ui.ColorReset())
		if !run.Match {
			status = fmt.Sprintf("%s❌ Mismatch%s", ui.ColorRed(), ui.ColorReset())
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), run.Name, ui.ColorReset(), padRight("", maxNameLen-len(run.Name)),
			ui.ColorYellow(), durations[i], ui.ColorReset(), padRight("", maxDurationLen-len([]rune(durations[i]))),
			status)
	}
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// DisplayMetrics prints one line per observed multiplication strategy.
func DisplayMetrics(out io.Writer, summary []metrics.StrategySummary) {
	fmt.Fprintf(out, "\n%sMultiplication Metrics:%s\n", ui.ColorBold(), ui.ColorReset())
	if len(summary) == 0 {
		fmt.Fprintf(out, "  (no multiplications)\n")
		return
	}
	for _, s := range summary {
		fmt.Fprintf(out, "  %-12s calls=%s limbs=%s time=%s\n",
			s.Strategy,
			strconv.FormatUint(s.Calls, 10),
			FormatNumberString(strconv.FormatUint(s.Limbs, 10)),
			FormatExecutionDuration(s.Total))
	}
}

// DisplayMemoryStats shows memory statistics after an evaluation. gc holds
// the collector statistics when GC control was active.
func DisplayMemoryStats(out io.Writer, delta metrics.MemoryDelta, gc *memory.GCStats) {
	fmt.Fprintf(out, "\n%sMemory Stats:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Peak heap:       %s\n", metrics.FormatBytes(delta.PeakHeap))
	fmt.Fprintf(out, "  Total allocated: %s\n", metrics.FormatBytes(delta.Allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.GCCycles)
	if gc != nil {
		fmt.Fprintf(out, "  GC control:      suspended (%d cycles, %.2fms pause)\n",
			gc.NumGC, float64(gc.PauseTotalNs)/1e6)
	}
}
