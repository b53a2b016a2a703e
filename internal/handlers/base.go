package handlers

import (
	"errors"
	"io"
	"net/http"

	"retroboard/internal/errs"
	"retroboard/internal/i18n"
	"retroboard/internal/services"
	"retroboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// RespondError writes err as an errs.HTTPError. Unknown errors become a 500
// and are logged with the request logger.
func RespondError(c *gin.Context, err error) {
	httpErr := toHTTPError(err)
	if httpErr.Status >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(httpErr.Status, httpErr)
}

func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var policyErr *services.PolicyError
	if errors.As(err, &policyErr) {
		return errs.New(policyErr.Status, policyErr.Code, policyErr.Message)
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return errs.ValidationError(err)
	case errors.Is(err, store.ErrForbidden):
		return errs.NewForbiddenError(err.Error())
	case errors.Is(err, store.ErrSessionExists):
		return errs.NewConflictError(err.Error())
	default:
		return errs.NewInternalServerError()
	}
}

// bindJSON decodes and validates the body into req. With optional set, an
// empty body leaves req untouched.
func bindJSON(c *gin.Context, req any, optional bool) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	RespondError(c, errs.ValidationError(err))
	return false
}

// requestLanguage prefers ?lang= over Accept-Language.
func requestLanguage(c *gin.Context) i18n.Language {
	if lang, ok := i18n.Parse(c.Query("lang")); ok {
		return lang
	}
	return i18n.Match(c.GetHeader("Accept-Language"))
}
