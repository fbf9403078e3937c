// Package errors provides the structured error type recorded in call state.
// It implements machine-readable error codes, optional numeric status
// propagation, and normalization of arbitrary failures (including recovered
// panics) into a single CallError shape.
package errors
