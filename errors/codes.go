package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction errors
const (
	// ErrCodeInvalidConfig indicates a component was built with an invalid configuration.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Invocation errors
const (
	// ErrCodeArgumentMismatch indicates a sink received a different number of values than it accepts.
	ErrCodeArgumentMismatch ErrorCode = "ARGUMENT_MISMATCH"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
