package errors

import (
	"fmt"
)

// CallError is the structured error recorded for a failed API call.
type CallError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code,omitempty"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Status is the numeric status reported by the failed operation
	// (typically an HTTP status), 0 when unknown.
	Status int `json:"status,omitempty"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error, when one exists.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *CallError) Error() string {
	switch {
	case e.Code != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	case e.Code != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s (cause: %v)", e.Message, e.Cause)
	default:
		return e.Message
	}
}

// Unwrap returns the underlying cause of the error.
func (e *CallError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *CallError) WithCause(cause error) *CallError {
	e.Cause = cause
	return e
}

// WithStatus sets the numeric status and returns the receiver.
func (e *CallError) WithStatus(status int) *CallError {
	e.Status = status
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *CallError) WithDetails(details map[string]any) *CallError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// Retryable reports whether the error code indicates a retryable failure.
func (e *CallError) Retryable() bool { return IsRetryableCode(e.Code) }

// New creates a CallError with the given code and message.
func New(code ErrorCode, message string) *CallError {
	return &CallError{Code: code, Message: message}
}

// Newf creates a CallError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *CallError {
	return &CallError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a CallError with the given cause attached.
func Wrap(code ErrorCode, message string, cause error) *CallError {
	return &CallError{Code: code, Message: message, Cause: cause}
}
