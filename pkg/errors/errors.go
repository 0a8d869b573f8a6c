// Package errors provides structured error types for the jsonapi library.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library, CLI, and HTTP adapter
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every failure the library can produce carries one of a small set of codes.
// Parse-side failures (INVALID_MEMBER_NAME, INVALID_QUERY, INVALID_DOCUMENT)
// indicate malformed client input; MISSING_FIELD and UNSUPPORTED_VERSION
// indicate structurally incomplete or unrecognized documents; INTERNAL covers
// failures while rendering or encoding a response.
//
// # Usage
//
//	err := errors.New(errors.CodeInvalidMemberName, "member names cannot be blank")
//	if errors.Is(err, errors.CodeInvalidMemberName) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.CodeInvalidDocument, origErr, "decode %q", name)
//
// Nothing is retried and nothing recovers internally: the first failure
// aborts the enclosing parse, render, or flatten and surfaces verbatim.
// Callers choose the disposition.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Member name and path validation failures.
	CodeInvalidMemberName Code = "INVALID_MEMBER_NAME"

	// Query string decode and build failures.
	CodeInvalidQuery Code = "INVALID_QUERY"

	// Document and value decode failures (malformed text, bad UTF-8,
	// unexpected wire shape).
	CodeInvalidDocument Code = "INVALID_DOCUMENT"

	// A builder or decoder finished without a required field.
	CodeMissingField Code = "MISSING_FIELD"

	// The jsonapi member named a version other than "1.0".
	CodeUnsupportedVersion Code = "UNSUPPORTED_VERSION"

	// Link href validation failures.
	CodeInvalidLink Code = "INVALID_LINK"

	// Unexpected failures while rendering or encoding.
	CodeInternal Code = "INTERNAL_ERROR"
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
// It unwraps the error chain looking for an *Error with a matching code.
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// MissingField reports that a required field was never supplied.
func MissingField(name string) *Error {
	return New(CodeMissingField, "missing required field %q", name)
}

// UnsupportedVersion reports a jsonapi version this implementation does not
// recognize. Only "1.0" is supported.
func UnsupportedVersion(version string) *Error {
	return New(CodeUnsupportedVersion, "version %q is not supported by this implementation", version)
}
