package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/infrastructure/logger"
)

// LoggerMiddleware writes one access line per request, keyed by the matched route template when there is one
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		log.LogAccess(c.Request.Context(), logger.Access{
			Method:   c.Request.Method,
			Path:     path,
			ClientIP: c.ClientIP(),
			Status:   c.Writer.Status(),
			Latency:  time.Since(start),
			Bytes:    c.Writer.Size(),
		})
	}
}
