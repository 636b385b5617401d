package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Application exit codes returned by the bigcalc binary.
const (
	ExitSuccess       = 0   // Successful evaluation.
	ExitErrorGeneric  = 1   // Any error without a more specific code.
	ExitErrorTimeout  = 2   // The evaluation exceeded its deadline.
	ExitErrorMismatch = 3   // Multiplication strategies produced different products.
	ExitErrorConfig   = 4   // Invalid flags, environment or operands.
	ExitErrorCanceled = 130 // Interrupted by a signal (SIGINT convention).
)

// ConfigError represents a user configuration error, such as an invalid flag,
// environment override or threshold profile.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError wraps a failure raised while evaluating an expression and
// keeps the original cause available to errors.Is and errors.As.
type CalculationError struct {
	// Cause is the underlying error.
	Cause error
}

// Error returns the message of the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the wrapped cause.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports that an operation exceeded its time limit.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was abandoned.
	Limit time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure on a named field
// or operand.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports that several multiplication strategies disagreed on
// the same product.
type MismatchError struct {
	// Reference is the strategy whose result the others were compared with.
	Reference string
	// Mismatched lists the strategies whose results differ from Reference.
	Mismatched []string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("result mismatch: %s differ from %s", strings.Join(e.Mismatched, ", "), e.Reference)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil when err is nil.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the process exit code the CLI should return.
func ExitCode(err error) int {
	var (
		configErr     ConfigError
		validationErr ValidationError
		timeoutErr    TimeoutError
		mismatchErr   MismatchError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
