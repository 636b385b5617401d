package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/bigcalc/internal/biguint"
	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/ui"
)

// PrintExecutionConfig displays the evaluation about to run: the operation,
// operand sizes, timeout, environment and dispatch thresholds.
func PrintExecutionConfig(cfg config.AppConfig, a, b biguint.Value, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	expr := "A " + cfg.Operation + " B"
	if cfg.Shift > 0 && (cfg.Operation == config.OpAdd || cfg.Operation == config.OpSub) {
		expr = fmt.Sprintf("A·10^(19·%d) %s B", cfg.Shift, cfg.Operation)
	}
	fmt.Fprintf(out, "Evaluating %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), expr, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Operands: A has %s%s%s digits, B has %s%s%s digits.\n",
		ui.ColorCyan(), FormatNumberString(fmt.Sprint(a.DecimalDigits())), ui.ColorReset(),
		ui.ColorCyan(), FormatNumberString(fmt.Sprint(b.DecimalDigits())), ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	t := cfg.Thresholds()
	fmt.Fprintf(out, "Dispatch thresholds: Karatsuba=%s%d%s bytes, NTT=%s%d%s bytes, parallel=%s%d%s bytes.\n",
		ui.ColorCyan(), t.KaratsubaBytes, ui.ColorReset(),
		ui.ColorCyan(), t.NTTBytes, ui.ColorReset(),
		ui.ColorCyan(), t.ParallelBytes, ui.ColorReset())
}

// PrintExecutionMode displays whether a single strategy runs or all
// strategies are cross-checked.
func PrintExecutionMode(strategies []biguint.Strategy, out io.Writer) {
	var modeDesc string
	if len(strategies) > 1 {
		names := make([]string, len(strategies))
		for i, s := range strategies {
			names[i] = s.String()
		}
		modeDesc = "Parallel cross-check of " + strings.Join(names, ", ")
	} else {
		modeDesc = fmt.Sprintf("Single evaluation with the %s%s%s strategy",
			ui.ColorGreen(), strategies[0], ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
