// Package errors defines the coded errors shared by the tagflow CLI and HTTP
// API.
//
// Every user-facing failure carries a [Code]. The INVALID_* family marks bad
// input (documents, tags, options, layout files) and maps to 400 in the API;
// the *NOT_FOUND family maps to 404; everything else is internal.
//
//	err := errors.New(errors.ErrCodeInvalidAlignment, "unknown alignment %q", s)
//	if errors.IsInvalid(err) { ... }
//
//	err := errors.Wrap(errors.ErrCodeInvalidDocument, cause, "parse %s", path)
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidTag       Code = "INVALID_TAG"
	ErrCodeInvalidDocument  Code = "INVALID_DOCUMENT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle     Code = "INVALID_STYLE"
	ErrCodeInvalidAlignment Code = "INVALID_ALIGNMENT"
	ErrCodeInvalidUnit      Code = "INVALID_UNIT"
	ErrCodeInvalidLayout    Code = "INVALID_LAYOUT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeCanceled Code = "CANCELED"
	ErrCodeTimeout  Code = "TIMEOUT"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// IsInvalid reports whether c belongs to the INVALID_* family.
func (c Code) IsInvalid() bool { return strings.HasPrefix(string(c), "INVALID_") }

// HTTPStatus returns the response status for c.
func (c Code) HTTPStatus() int {
	switch {
	case c.IsInvalid():
		return http.StatusBadRequest
	case c == ErrCodeNotFound, c == ErrCodeFileNotFound:
		return http.StatusNotFound
	case c == ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case c == ErrCodeCanceled:
		// Client closed request, as nginx reports it.
		return 499
	default:
		return http.StatusInternalServerError
	}
}

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// CodeOf is GetCode with fallbacks: context errors map to CANCELED and
// TIMEOUT, anything else uncoded to INTERNAL_ERROR. Nil has no code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if code := GetCode(err); code != "" {
		return code
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrCodeTimeout
	case errors.Is(err, context.Canceled):
		return ErrCodeCanceled
	}
	return ErrCodeInternal
}

// UserMessage returns the message of the first *Error in err's chain, or
// err.Error() for uncoded errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err carries an INVALID_* code.
func IsInvalid(err error) bool {
	return GetCode(err).IsInvalid()
}

// HTTPStatus returns the response status for err. err must be non-nil.
func HTTPStatus(err error) int {
	return CodeOf(err).HTTPStatus()
}
