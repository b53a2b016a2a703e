package errs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func NewBadRequestError(message string) *HTTPError {
	return New(http.StatusBadRequest, "", message)
}

func NewUnauthorizedError(message string) *HTTPError {
	return New(http.StatusUnauthorized, "", message)
}

func NewForbiddenError(message string) *HTTPError {
	return New(http.StatusForbidden, "", message)
}

func NewNotFoundError(message string) *HTTPError {
	return New(http.StatusNotFound, "", message)
}

func NewConflictError(message string) *HTTPError {
	return New(http.StatusConflict, "", message)
}

// NewInternalServerError never carries the underlying error; that goes to the log.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, "", http.StatusText(http.StatusInternalServerError))
}

// ValidationError converts a bind or validator error into a 400 with per-field details.
func ValidationError(err error) *HTTPError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewBadRequestError("Invalid request body: " + err.Error())
	}

	out := NewBadRequestError("Validation failed")
	out.Code = "VALIDATION_FAILED"
	for _, fe := range fieldErrs {
		msg := fmt.Sprintf("failed on '%s'", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on '%s=%s'", fe.Tag(), fe.Param())
		}
		out.Errors = append(out.Errors, FieldError{Field: fe.Field(), Error: msg})
	}
	return out
}
