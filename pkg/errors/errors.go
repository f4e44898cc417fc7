// Package errors provides structured error types for linkrank.
//
// Every failure the graph engine can report carries a machine-readable
// [Code], so the CLI, the interactive shell and the HTTP API can render the
// same condition consistently without string matching.
//
// # Error Codes
//
// Graph engine codes:
//   - DUPLICATE_URL: a page with the URL already exists (or the URL is empty)
//   - PAGE_NOT_FOUND: the page to remove does not exist
//   - ENDPOINT_NOT_FOUND: a link endpoint does not resolve to a page
//   - DUPLICATE_LINK: the directed link already exists
//   - CAPACITY_EXCEEDED: the graph is at its configured page limit
//   - MALFORMED_INPUT: input files or entries could not be turned into a graph
//
// Outer layer codes:
//   - INVALID_INPUT: a flag, query parameter or request body is invalid
//   - FILE_NOT_FOUND: an input file does not exist
//   - INTERNAL_ERROR: unexpected failure
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateURL, "page %q already exists", url)
//	if errors.Is(err, errors.ErrCodeDuplicateURL) {
//	    // Handle duplicate
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedInput, cause, "pages line %d", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Graph engine errors
	ErrCodeDuplicateURL     Code = "DUPLICATE_URL"
	ErrCodePageNotFound     Code = "PAGE_NOT_FOUND"
	ErrCodeEndpointNotFound Code = "ENDPOINT_NOT_FOUND"
	ErrCodeDuplicateLink    Code = "DUPLICATE_LINK"
	ErrCodeCapacityExceeded Code = "CAPACITY_EXCEEDED"
	ErrCodeMalformedInput   Code = "MALFORMED_INPUT"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for the outermost *Error and compares
// its code; inner causes are not consulted.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the user message of the cause when there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
