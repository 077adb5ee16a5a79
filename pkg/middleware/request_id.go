package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"zapbytes/pkg/logger"
)

// RequestID middleware to generate request ID if not present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if request ID exists in header
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			// Generate new request ID if not present
			requestID = uuid.New().String()
		}

		// Set request ID in context
		c.Set("RequestID", requestID)

		// Attach to the request context so logger.FromContext carries it
		// through the service layer
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))

		// Set request ID in response header
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()
	}
}
