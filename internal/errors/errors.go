package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 4   // Indicates a configuration or input error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
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

// CalculationError encapsulates a multiplication failure while preserving the
// original cause.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// FormatReason classifies why a decimal literal was rejected.
type FormatReason int

const (
	// ReasonEmpty means the literal had no digits at all.
	ReasonEmpty FormatReason = iota
	// ReasonIllegalChar means a byte other than a digit (or a single leading
	// sign marker) was found.
	ReasonIllegalChar
)

// String returns a short label for the reason.
func (r FormatReason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty"
	case ReasonIllegalChar:
		return "illegal character"
	default:
		return "unknown"
	}
}

// FormatError reports a malformed decimal operand. Operand is filled in by
// callers that know which input failed ("first", "second"); the parser
// itself leaves it empty.
type FormatError struct {
	Operand string
	Input   string
	Reason  FormatReason
	// Pos is the byte offset of the offending character (ReasonIllegalChar only).
	Pos  int
	Char byte
}

// Error returns a message naming the operand and the failure reason.
func (e FormatError) Error() string {
	prefix := "invalid format"
	if e.Operand != "" {
		prefix = fmt.Sprintf("invalid format in %s operand", e.Operand)
	}
	switch e.Reason {
	case ReasonEmpty:
		if e.Input == "" {
			return prefix + ": empty input"
		}
		return fmt.Sprintf("%s: no digits in %q", prefix, e.Input)
	case ReasonIllegalChar:
		return fmt.Sprintf("%s: illegal character %q at position %d", prefix, e.Char, e.Pos)
	default:
		return prefix
	}
}

// LimitError represents a resource limit that an input would exceed, such as
// the maximum number of decimal digits accepted for an operand.
type LimitError struct {
	// What names the limited quantity ("digits", "limbs").
	What string
	// Got is the size the request needed, or 0 when only the crossing of
	// Limit is known.
	Got int
	// Limit is the configured maximum.
	Limit int
}

// Error returns a formatted message describing the exceeded limit.
func (e LimitError) Error() string {
	if e.Got <= 0 {
		return fmt.Sprintf("resource limit exceeded: more than %d %s", e.Limit, e.What)
	}
	return fmt.Sprintf("resource limit exceeded: %d %s (limit: %d)", e.Got, e.What, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
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

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if IsContextError(err) {
		return ExitErrorCanceled
	}
	var (
		cfgErr ConfigError
		fmtErr FormatError
		limErr LimitError
		valErr ValidationError
	)
	if errors.As(err, &cfgErr) || errors.As(err, &fmtErr) || errors.As(err, &limErr) || errors.As(err, &valErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
