// Package errors provides structured error types for notegraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core packages, the editor and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly messages for the editor's status line and dialogs
//
// # Error Codes
//
// The taxonomy mirrors what can go wrong while editing a note graph:
//   - VALIDATION: bad note text or a self-loop edge
//   - NOT_FOUND: an unknown node or edge identity was referenced
//   - FORMAT: a graph file is malformed or incomplete
//   - UNRESOLVED: an edge could not be mapped back to its endpoints (non-fatal)
//   - FILE_NOT_FOUND: the graph file does not exist (benign on load)
//   - IO / INTERNAL: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeValidation, "text exceeds %d characters", 128)
//	if errors.Is(err, errors.ErrCodeValidation) {
//	    // show a warning
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeValidation   Code = "VALIDATION"
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFormat       Code = "FORMAT"
	ErrCodeUnresolved   Code = "UNRESOLVED"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeInvalidPath  Code = "INVALID_PATH"
	ErrCodeIO           Code = "IO_ERROR"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
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
// Only the outermost *Error is consulted, so a FORMAT error wrapping a
// VALIDATION error reports FORMAT.
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

// IsUserError reports whether err was caused by the user's input or a
// missing file, as opposed to a malformed file or a system failure.
// The editor shows the former as warnings and the latter as errors.
func IsUserError(err error) bool {
	switch GetCode(err) {
	case ErrCodeValidation, ErrCodeNotFound, ErrCodeFileNotFound,
		ErrCodeUnresolved, ErrCodeInvalidPath:
		return true
	default:
		return false
	}
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the messages of any *Error causes. Plain causes are left out.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	var inner *Error
	if e.Cause != nil && errors.As(e.Cause, &inner) {
		return e.Message + ": " + UserMessage(inner)
	}
	return e.Message
}
