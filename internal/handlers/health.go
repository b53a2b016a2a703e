package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler takes the database ping so tests can swap it.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.ping(ctx); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("database health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"database":      "ok",
		"response_time": time.Since(start).String(),
		"timestamp":     time.Now().UTC(),
	})
}
