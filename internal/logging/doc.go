// Package logging provides a unified logging interface for the bigcalc
// command. It abstracts the underlying logging implementation so that
// configuration and application code log through [Logger] while the
// arithmetic core receives the zerolog backend directly.
package logging
