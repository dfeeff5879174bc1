package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one line per completed request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		line := "request_completed"
		if status >= 400 {
			line = "request_failed"
		}
		log.Printf(
			"%s method=%s path=%s status=%d client_ip=%s latency=%s",
			line,
			c.Request.Method,
			c.Request.URL.Path,
			status,
			c.ClientIP(),
			time.Since(start),
		)
	}
}
