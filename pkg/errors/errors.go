// Package errors provides structured error types for giftcircle.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// # Error Codes
//
// Codes group into three families:
//   - Input errors raised before any draw is attempted (INSUFFICIENT_*,
//     DUPLICATE_*, INCOMPLETE_*, INFEASIBLE_*)
//   - Search errors raised when the retry budget runs out (SEARCH_EXHAUSTED)
//   - Plumbing errors from readers, writers and stores (INVALID_*, NOT_FOUND,
//     INTERNAL_ERROR)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeSearchExhausted, "no gift circle in %d attempts", n)
//	if errors.Is(err, errors.ErrCodeSearchExhausted) {
//	    // a fresh call may still succeed
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Draw precondition errors
	ErrCodeInsufficientParticipants Code = "INSUFFICIENT_PARTICIPANTS"
	ErrCodeDuplicateNames           Code = "DUPLICATE_NAMES"
	ErrCodeIncompleteGroups         Code = "INCOMPLETE_GROUP_ASSIGNMENT"
	ErrCodeInfeasibleGroups         Code = "INFEASIBLE_GROUP_DISTRIBUTION"

	// Search errors
	ErrCodeSearchExhausted Code = "SEARCH_EXHAUSTED"

	// Input and output errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidRecord Code = "INVALID_RECORD"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

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
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the chain holds no coded error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var d *DuplicateNamesError
	if errors.As(err, &d) {
		return ErrCodeDuplicateNames
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
	var d *DuplicateNamesError
	if errors.As(err, &d) {
		return d.message()
	}
	return err.Error()
}

// DuplicateNamesError reports every display name that appears more than once.
type DuplicateNamesError struct {
	Names []string
}

// Error implements the error interface.
func (e *DuplicateNamesError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCodeDuplicateNames, e.message())
}

// Code returns the error code for this error type.
func (e *DuplicateNamesError) Code() Code {
	return ErrCodeDuplicateNames
}

func (e *DuplicateNamesError) message() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return "found duplicate names: " + strings.Join(quoted, ", ")
}
