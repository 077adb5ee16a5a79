package middleware

import (
	"github.com/gin-gonic/gin"

	"zapbytes/pkg/logger"
)

// VisitorIDHeader carries the browser-generated visitor identity.
const VisitorIDHeader = "X-Visitor-ID"

// VisitorIDKey is the gin context key for the visitor identity.
const VisitorIDKey = "VisitorID"

// VisitorID extracts the visitor identity header into the request
// context. The identity is minted client-side, so an absent header just
// leaves the key unset and handlers that require it reject the request.
func VisitorID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if visitorID := c.GetHeader(VisitorIDHeader); visitorID != "" {
			c.Set(VisitorIDKey, visitorID)
			c.Request = c.Request.WithContext(logger.WithVisitorID(c.Request.Context(), visitorID))
		}

		c.Next()
	}
}

// GetVisitorID returns the visitor identity stored by VisitorID
func GetVisitorID(c *gin.Context) string {
	return c.GetString(VisitorIDKey)
}
