// Package errors defines the stable error taxonomy for canonicalization
// failures. Every error crossing a package boundary carries one of the
// codes below so callers can distinguish failure classes without matching
// on message text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// EncodingInvalid indicates the input bytes are not valid UTF-8
	EncodingInvalid ErrorCode = "ENCODING_ERROR"
	// SyntaxInvalid indicates the input text is not valid JSON
	SyntaxInvalid ErrorCode = "SYNTAX_ERROR"
	// ValueInvalid indicates a parsed value has no canonical rendering
	ValueInvalid ErrorCode = "VALUE_ERROR"
	// ResourceExhausted indicates a resource bound was hit during parse or render
	ResourceExhausted ErrorCode = "RESOURCE_ERROR"
)

// CanonError represents a canonicalization failure with code, message,
// and optional input position
type CanonError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Offset  int64     `json:"offset,omitempty"` // byte offset into the input; -1 when unknown
	cause   error     // Underlying error (not exported to JSON)
}

// New creates a new CanonError with no input position
func New(code ErrorCode, message string, cause error) *CanonError {
	return &CanonError{
		Code:    code,
		Message: message,
		Offset:  -1,
		cause:   cause,
	}
}

// WithOffset records the byte offset in the input the error refers to
func (e *CanonError) WithOffset(offset int64) *CanonError {
	e.Offset = offset
	return e
}

// Error implements the error interface
func (e *CanonError) Error() string {
	msg := e.Message
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s (offset %d)", msg, e.Offset)
	}
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, msg, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap returns the underlying error
func (e *CanonError) Unwrap() error {
	return e.cause
}

// CodeOf extracts the ErrorCode from err, or "" if err is not a CanonError
func CodeOf(err error) ErrorCode {
	var cerr *CanonError
	if stderrors.As(err, &cerr) {
		return cerr.Code
	}
	return ""
}
