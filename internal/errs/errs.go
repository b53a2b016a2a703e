// Package errs defines the JSON error shape returned by the API.
package errs

import (
	"net/http"
	"strings"
)

// HTTPError is serialized as-is: {"code": ..., "message": ..., "status": ...}.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is one failed validation rule on a request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError regardless of code.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// CodeFromStatus turns "Bad Request" into "BAD_REQUEST".
func CodeFromStatus(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func New(status int, code, message string) *HTTPError {
	if code == "" {
		code = CodeFromStatus(status)
	}
	return &HTTPError{Code: code, Message: message, Status: status}
}
