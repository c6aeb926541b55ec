package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger emits one structured log line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"request_id": GetRequestID(c),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}
