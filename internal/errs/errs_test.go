package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeFromStatus(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", CodeFromStatus(http.StatusBadRequest))
	assert.Equal(t, "NOT_FOUND", CodeFromStatus(http.StatusNotFound))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", CodeFromStatus(http.StatusInternalServerError))
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewForbiddenError("nope"))

	var target *HTTPError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, http.StatusForbidden, target.Status)
	assert.Equal(t, "FORBIDDEN", target.Code)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestValidationError(t *testing.T) {
	type request struct {
		Username string `validate:"required"`
		Age      int    `validate:"gte=18"`
	}
	err := validator.New().Struct(request{Age: 3})
	require.Error(t, err)

	httpErr := ValidationError(err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "VALIDATION_FAILED", httpErr.Code)
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, "Username", httpErr.Errors[0].Field)
	assert.Equal(t, "failed on 'gte=18'", httpErr.Errors[1].Error)

	plain := ValidationError(errors.New("unexpected EOF"))
	assert.Equal(t, "BAD_REQUEST", plain.Code)
	assert.Empty(t, plain.Errors)
}
