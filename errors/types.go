// Package errors defines the coded error type shared across lectern.
// CLI handlers switch on the code to print actionable hints, and
// verbose mode dumps the structured details as JSON.
package errors

import (
	"encoding/json"
	"errors"
)

// ErrorCode identifies a failure class across package boundaries.
type ErrorCode string

const (
	// Document errors
	ErrCodeDocNotFound          ErrorCode = "DOC_NOT_FOUND"
	ErrCodeDocUnsupportedFormat ErrorCode = "DOC_UNSUPPORTED_FORMAT"
	ErrCodeDocParseFailed       ErrorCode = "DOC_PARSE_FAILED"

	// Position store errors
	ErrCodePositionIO ErrorCode = "POSITION_IO"

	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Follow server errors
	ErrCodeServerFailed ErrorCode = "SERVER_FAILED"

	// Export errors
	ErrCodeExportFailed ErrorCode = "EXPORT_FAILED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// LecternError pairs an error code with a message and optional
// structured details. A wrapped cause, when present, stays reachable
// through the standard unwrap chain.
type LecternError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// New creates an error with a code and message.
func New(code ErrorCode, message string) *LecternError {
	return &LecternError{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code ErrorCode, message string) *LecternError {
	lerr := New(code, message)
	lerr.Cause = err
	return lerr
}

func (e *LecternError) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LecternError) Unwrap() error {
	return e.Cause
}

// WithDetail records a named value for structured output and returns
// the error so calls chain.
func (e *LecternError) WithDetail(key string, value interface{}) *LecternError {
	if e.Details == nil {
		e.Details = make(map[string]interface{}, 1)
	}
	e.Details[key] = value
	return e
}

// ToJSON renders the error as indented JSON.
func (e *LecternError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// GetCode returns the code of the first LecternError in the chain, or
// the empty string when the chain never passes through one.
func GetCode(err error) ErrorCode {
	var lerr *LecternError
	if errors.As(err, &lerr) {
		return lerr.Code
	}
	return ""
}

// Is reports whether the error chain carries the given code.
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
