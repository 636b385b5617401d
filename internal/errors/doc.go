// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// calculation, timeout, strategy mismatch) and for carrying the underlying
// cause. [ExitCode] maps any of them to the process exit status.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapping types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors
