// Package ui provides theme and color support for the bigcalc command-line
// output. It defines ANSI color schemes, accessor functions returning the
// escape codes of the active theme, and lipgloss styles for the result report.
//
// This package is a shared dependency for packages that need color output,
// keeping presentation details out of the arithmetic and application layers.
package ui
