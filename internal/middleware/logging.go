package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/logger"
	"expensetracker/internal/uuid"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// RequestLogging returns a Gin middleware that tags each request with an ID
// and logs method, path, status, latency and client IP once it completes.
// A caller-supplied X-Request-ID that parses as a UUID is reused.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if !uuid.IsValid(requestID) {
			requestID = uuid.New()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if c.Writer.Status() >= 500 {
			logger.Get().Warnw("request", fields...)
			return
		}
		logger.Get().Infow("request", fields...)
	}
}

// RequestID returns the ID assigned by RequestLogging, or "" outside it.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
