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
	ExitErrorConfig   = 4   // Indicates a configuration error.
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

// OverflowRiskError reports that a requested Fibonacci index lies beyond the
// precomputed safe bound. The bound is a conservative static guard: it is
// checked before any computation rather than detected dynamically, so the
// error carries both the offending index and the bound it exceeded.
type OverflowRiskError struct {
	// Index is the requested Fibonacci index.
	Index uint64
	// Limit is the largest index whose undistorted value fits in 128 bits.
	Limit uint64
}

// Error returns a formatted message describing the overflow risk.
func (e OverflowRiskError) Error() string {
	return fmt.Sprintf("overflow risk: index %d exceeds safe bound %d (result would exceed 128-bit capacity)", e.Index, e.Limit)
}

// NewOverflowRiskError creates an OverflowRiskError for the given index and bound.
//
// Parameters:
//   - index: The requested index.
//   - limit: The safe index bound.
//
// Returns:
//   - error: A new OverflowRiskError instance.
func NewOverflowRiskError(index, limit uint64) error {
	return OverflowRiskError{Index: index, Limit: limit}
}

// IsOverflowRisk reports whether err is (or wraps) an OverflowRiskError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error chain contains an OverflowRiskError.
func IsOverflowRisk(err error) bool {
	var target OverflowRiskError
	return errors.As(err, &target)
}

// InvalidRangeError reports a half-open index range whose end is not strictly
// greater than its start.
type InvalidRangeError struct {
	// Start is the inclusive lower bound of the requested range.
	Start uint64
	// End is the exclusive upper bound of the requested range.
	End uint64
}

// Error returns a formatted message describing the invalid range.
func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d): end must be strictly greater than start", e.Start, e.End)
}

// NewInvalidRangeError creates an InvalidRangeError for the given bounds.
//
// Parameters:
//   - start: The inclusive lower bound.
//   - end: The exclusive upper bound.
//
// Returns:
//   - error: A new InvalidRangeError instance.
func NewInvalidRangeError(start, end uint64) error {
	return InvalidRangeError{Start: start, End: end}
}

// IsInvalidRange reports whether err is (or wraps) an InvalidRangeError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error chain contains an InvalidRangeError.
func IsInvalidRange(err error) bool {
	var target InvalidRangeError
	return errors.As(err, &target)
}

// WorkerFailureError reports that a concurrent worker terminated abnormally
// (a panic rather than an ordinary computation error). It fails the whole
// operation that spawned the worker; per-index computation errors are not
// represented by this type.
type WorkerFailureError struct {
	// Reason is the recovered panic value or a description of the fault.
	Reason any
}

// Error returns a formatted message describing the worker failure.
func (e WorkerFailureError) Error() string {
	return fmt.Sprintf("worker failure: %v", e.Reason)
}

// NewWorkerFailureError creates a WorkerFailureError from a recovered panic value.
//
// Parameters:
//   - reason: The recovered value.
//
// Returns:
//   - error: A new WorkerFailureError instance.
func NewWorkerFailureError(reason any) error {
	return WorkerFailureError{Reason: reason}
}

// IsWorkerFailure reports whether err is (or wraps) a WorkerFailureError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error chain contains a WorkerFailureError.
func IsWorkerFailure(err error) bool {
	var target WorkerFailureError
	return errors.As(err, &target)
}

// ComputationError encapsulates an engine error while preserving the original
// cause. This allows for structured error handling and inspection of what went
// wrong during a distorted Fibonacci computation.
type ComputationError struct {
	// Cause is the underlying error that triggered this computation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e ComputationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e ComputationError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
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
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
