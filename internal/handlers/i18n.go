package handlers

import (
	"net/http"

	"retroboard/internal/i18n"

	"github.com/gin-gonic/gin"
)

type I18nHandler struct{}

func NewI18nHandler() *I18nHandler {
	return &I18nHandler{}
}

// Translations returns the merged table for ?lang= or the Accept-Language header.
func (h *I18nHandler) Translations(c *gin.Context) {
	lang := requestLanguage(c)
	c.Header("Content-Language", string(lang))
	c.JSON(http.StatusOK, gin.H{
		"language":     lang,
		"languages":    i18n.Supported(),
		"translations": i18n.Resolve(lang),
	})
}
