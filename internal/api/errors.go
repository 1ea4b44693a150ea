package api

import (
	"net/http"

	"github.com/matzehuels/tagflow/pkg/errors"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeErr writes err with the status derived from its code. Uncoded errors
// are reported as INTERNAL_ERROR with their message, context errors as
// CANCELED or TIMEOUT.
func writeErr(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)
	msg := errors.UserMessage(err)
	switch code {
	case errors.ErrCodeCanceled:
		msg = "request cancelled"
	case errors.ErrCodeTimeout:
		msg = "request timed out"
	}
	writeError(w, code.HTTPStatus(), string(code), msg)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: msg})
}
