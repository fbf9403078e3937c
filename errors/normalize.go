package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

// StatusCarrier is implemented by errors that report a numeric status
// (for example an HTTP response status).
type StatusCarrier interface {
	StatusCode() int
}

// CodeCarrier is implemented by errors that report a string error code.
type CodeCarrier interface {
	ErrorCode() string
}

// Normalize converts an arbitrary operation failure into a CallError.
// A *CallError anywhere in the chain is returned as-is. Otherwise a new
// CallError is built from the error's message, copying a numeric status and
// a string code when the error exposes them.
func Normalize(err error) *CallError {
	if err == nil {
		return New(ErrCodeCallFailed, "operation failed")
	}

	var callErr *CallError
	if stderrors.As(err, &callErr) {
		return callErr
	}

	out := &CallError{
		Code:    ErrCodeCallFailed,
		Message: err.Error(),
		Cause:   err,
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		out.Code = ErrCodeCancelled
	}

	var sc StatusCarrier
	if stderrors.As(err, &sc) {
		out.Status = sc.StatusCode()
	}
	var cc CodeCarrier
	if stderrors.As(err, &cc) {
		if code := cc.ErrorCode(); code != "" {
			out.Code = ErrorCode(code)
		}
	}
	return out
}

// FromPanic coerces a recovered panic value into a minimal CallError.
// Panic values that are errors keep their message; anything else gets a
// generic message with the value attached as a detail.
func FromPanic(v any) *CallError {
	if err, ok := v.(error); ok {
		return Wrap(ErrCodeCallPanic, err.Error(), err)
	}
	return Newf(ErrCodeCallPanic, "operation panicked").
		WithDetails(map[string]any{"panic": fmt.Sprintf("%v", v)})
}

// IsCallError checks if an error is a CallError.
func IsCallError(err error) bool {
	var callErr *CallError
	return stderrors.As(err, &callErr)
}

// AsCallError converts an error to a CallError if possible.
func AsCallError(err error) (*CallError, bool) {
	var callErr *CallError
	ok := stderrors.As(err, &callErr)
	return callErr, ok
}
