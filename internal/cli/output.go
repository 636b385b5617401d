// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayComparisonTable].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/agbru/bigcalc/internal/biguint"
	"github.com/agbru/bigcalc/internal/ui"
)

// Result is the outcome of one evaluation.
type Result struct {
	// Operation is add, sub, mul or cmp.
	Operation string
	// Value is the arithmetic result. It is unused for cmp.
	Value biguint.Value
	// Cmp is the comparison result (-1, 0 or +1) for cmp.
	Cmp int
	// Strategy names the multiplication algorithm that produced Value.
	Strategy string
	// Duration is the evaluation wall time.
	Duration time.Duration
}

// Text returns the result as it is printed in quiet mode and written to
// files: the decimal value, or the comparison sign for cmp.
func (r Result) Text() string {
	if r.Operation == "cmp" {
		return strconv.Itoa(r.Cmp)
	}
	return r.Value.String()
}

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode prints the bare result only.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
	// Details adds the result analysis section.
	Details bool
}

// WriteResultToFile writes a result, preceded by a commented header, to
// config.OutputFile. It does nothing when no file is configured.
func WriteResultToFile(r Result, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// bufio.Writer keeps the first write error and reports it from Flush.
	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# bigcalc result\n")
	fmt.Fprintf(w, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "# Operation: %s\n", r.Operation)
	if r.Strategy != "" {
		fmt.Fprintf(w, "# Strategy: %s\n", r.Strategy)
	}
	fmt.Fprintf(w, "# Duration: %s\n", r.Duration)
	if r.Operation != "cmp" {
		fmt.Fprintf(w, "# Limbs: %d\n", r.Value.Size())
		fmt.Fprintf(w, "# Digits: %d\n", r.Value.DecimalDigits())
	}
	fmt.Fprintf(w, "\n%s\n", r.Text())
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return file.Close()
}

// FormatQuietResult formats a result for quiet mode output.
func FormatQuietResult(r Result) string {
	return r.Text()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, r Result) {
	fmt.Fprintln(out, FormatQuietResult(r))
}

// DisplayResult prints a result in the standard, human-readable layout.
func DisplayResult(out io.Writer, r Result, verbose, details bool) {
	label := r.Operation
	if r.Strategy != "" {
		label += ", " + r.Strategy
	}
	fmt.Fprintf(out, "Result %s(%s)%s computed in %s%s%s\n",
		ui.ColorGreen(), label, ui.ColorReset(),
		ui.ColorYellow(), FormatExecutionDuration(r.Duration), ui.ColorReset())

	if r.Operation == "cmp" {
		fmt.Fprintf(out, "A %s B (%s%d%s)\n", cmpSymbol(r.Cmp), ui.ColorCyan(), r.Cmp, ui.ColorReset())
		return
	}

	text := r.Value.String()
	shown, truncated := text, false
	if !verbose {
		shown, truncated = TruncateDigits(text)
	}
	fmt.Fprintf(out, "Value = %s%s%s\n", ui.ColorCyan(), shown, ui.ColorReset())
	if truncated {
		fmt.Fprintf(out, "%s(truncated, %s digits; use -v to print the full value)%s\n",
			ui.ColorGrey(), FormatNumberString(strconv.Itoa(len(text))), ui.ColorReset())
	}
	if details {
		displayDetails(out, r)
	}
}

func displayDetails(out io.Writer, r Result) {
	s := ui.CurrentStyles()
	fmt.Fprintf(out, "\n%s\n", s.Title.Render("Result details"))
	row := func(label, value string) {
		fmt.Fprintf(out, "  %s%s\n", s.Label.Render(label), s.Value.Render(value))
	}
	row("Limbs", FormatNumberString(strconv.Itoa(r.Value.Size())))
	row("Decimal digits", FormatNumberString(strconv.Itoa(r.Value.DecimalDigits())))
	row("Byte length", FormatNumberString(strconv.Itoa(r.Value.ByteLength())))
	if r.Strategy != "" {
		row("Strategy", r.Strategy)
	}
	row("Evaluation time", FormatExecutionDuration(r.Duration))
}

func cmpSymbol(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}

// DisplayResultWithConfig displays a result with the given output configuration
// and saves it to a file when one is configured.
func DisplayResultWithConfig(out io.Writer, r Result, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, r)
	} else {
		DisplayResult(out, r, config.Verbose, config.Details)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(r, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
