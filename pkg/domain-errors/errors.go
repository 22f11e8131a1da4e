// Package domainerrors defines the coded error taxonomy shared between
// services and the transport layer. Services create or wrap errors with a
// Code; transport translates codes to HTTP statuses without inspecting
// messages.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error. Codes are stable identifiers; messages are
// free-form and may change.
type Code string

const (
	// CodeInvalidCategory reports a data category outside the fixed enumeration.
	CodeInvalidCategory Code = "invalid_category"
	// CodeInvalidLimit reports a non-positive query limit.
	CodeInvalidLimit Code = "invalid_limit"
	// CodeNotFound reports a missing entity (request id, user profile).
	CodeNotFound Code = "not_found"
	// CodeValidation reports a malformed domain value, e.g. a hypothetical
	// snapshot with a non-enumerated key.
	CodeValidation Code = "validation"
	// CodeBadRequest reports an unparseable or structurally invalid request.
	CodeBadRequest Code = "bad_request"
	// CodeInternal reports an unexpected failure; nothing domain-level to act on.
	CodeInternal Code = "internal"
)

// Error is a domain error with a code, a human-readable message, and an
// optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error, preserving the
// cause for errors.Is / errors.As.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or any error in its chain) carries code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// GetCode returns the outermost code in the chain, or CodeInternal when err
// is not a domain error.
func GetCode(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to the HTTP status the transport layer should
// return. Unknown codes map to 500 so new codes fail safe.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeInvalidCategory, CodeInvalidLimit, CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
