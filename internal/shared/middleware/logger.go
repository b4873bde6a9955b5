package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"collection-backend/pkg/logger"
)

// Logger emits one structured line per request after the handler chain
// finished, carrying the correlation id set by RequestID.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		fields := map[string]interface{}{
			"requestId": c.GetString("request_id"),
			"method":    c.Request.Method,
			"path":      path,
			"status":    c.Writer.Status(),
			"latencyMs": time.Since(start).Milliseconds(),
			"clientIp":  c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		logger.Info("Request completed", fields)
	}
}
