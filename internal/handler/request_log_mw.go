package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestLogMiddleware tags every request with a correlation id and
// logs the outcome.
func (h *Handler) requestLogMiddleware(c *gin.Context) {
	requestID := uuid.NewString()
	c.Writer.Header().Set("X-Request-ID", requestID)

	start := time.Now()
	c.Next()

	h.logger.Info("request",
		zap.String("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("took", time.Since(start)),
	)
}
