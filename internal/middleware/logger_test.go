package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"retroboard/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, `"level":"info"`},
		{http.StatusNotFound, `"level":"warn"`},
		{http.StatusInternalServerError, `"level":"error"`},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		r := gin.New()
		r.Use(RequestLogger(zerolog.New(&buf)))
		r.GET("/x", func(c *gin.Context) {
			c.Set(CheckUserKey, &models.User{ID: "u-1"})
			zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
			c.Status(tt.status)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		r.ServeHTTP(rec, req)

		out := buf.String()
		assert.Contains(t, out, tt.level)
		assert.Contains(t, out, `"request_id":"req-42"`)
		assert.Contains(t, out, `"user_id":"u-1"`)
		assert.Contains(t, out, "inside handler")
		assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	}
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/anon", AuthRequired(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/user", func(c *gin.Context) {
		c.Set(CheckUserKey, &models.User{ID: "u-1"})
	}, AuthRequired(), func(c *gin.Context) {
		assert.Equal(t, "u-1", CurrentUser(c).ID)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anon", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
