package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/pkg/apperr"
)

// ErrorHandler is the single boundary that turns domain failures into HTTP
// responses. Typed errors keep their status and message; anything else is a
// generic 500 so internals never leak to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log.Printf("request_error method=%s path=%s error=%q", c.Request.Method, c.Request.URL.Path, err.Error())

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			body := gin.H{"error": appErr.Message}
			if len(appErr.Details) > 0 {
				body["details"] = appErr.Details
			}
			c.JSON(appErr.Status, body)
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
